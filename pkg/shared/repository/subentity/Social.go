package subentity

// SocialPlatforms lists the link keys a profile may carry, in display order.
var SocialPlatforms = []string{"youtube", "twitter", "facebook", "linkedin", "instagram"}

// Social maps a platform name to a profile URL.
type Social map[string]string
