package constvars

const ResponseUnknown = "unknown"
