package utils

// REVISION is surfaced in every response envelope so clients can pin
// behaviour to a released API build.
const REVISION = "1.2.0"
