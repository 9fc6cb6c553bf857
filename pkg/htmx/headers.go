package htmx

// Response headers.
const (
	HeaderHXPushURL    = "HX-Push-Url"
	HeaderHXRedirect   = "HX-Redirect"
	HeaderHXReplaceURL = "HX-Replace-Url"
	HeaderHXReswap     = "HX-Reswap"
	HeaderHXRetarget   = "HX-Retarget"
	HeaderHXTrigger    = "HX-Trigger"
)

// Request headers.
const (
	HeaderHXRequest               = "HX-Request"
	HeaderHXBoosted               = "HX-Boosted"
	HeaderHXCurrentURL            = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXTarget                = "HX-Target"
	HeaderHXTriggerName           = "HX-Trigger-Name"
)
