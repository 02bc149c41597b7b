package constvars

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusOngoing   = "ongoing"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

const (
	RelationshipSelf     = "self"
	RelationshipChild    = "child"
	RelationshipParent   = "parent"
	RelationshipSpouse   = "spouse"
	RelationshipRelative = "relative"
	RelationshipOther    = "other"
)

const (
	NotificationEventAppointmentCreated   = "appointment.created"
	NotificationEventAppointmentCancelled = "appointment.cancelled"
	NotificationEventAppointmentUpdated   = "appointment.updated"
)
