package models

// TimeZoneOption is one selectable zone for the console form.
type TimeZoneOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Code  string `json:"code"`
}

// TimeZones is the fixed set of zone identifiers a client may use. The
// backend scheduler only understands these.
var TimeZones = []TimeZoneOption{
	{Value: "UTC", Label: "UTC - Coordinated Universal Time", Code: "UTC"},

	// North America
	{Value: "America/New_York", Label: "America/New_York (EST/EDT)", Code: "EST"},
	{Value: "America/Toronto", Label: "America/Toronto (EST/EDT)", Code: "EST"},
	{Value: "America/Montreal", Label: "America/Montreal (EST/EDT)", Code: "EST"},
	{Value: "America/Detroit", Label: "America/Detroit (EST/EDT)", Code: "EST"},
	{Value: "America/Miami", Label: "America/Miami (EST/EDT)", Code: "EST"},
	{Value: "America/Chicago", Label: "America/Chicago (CST/CDT)", Code: "CST"},
	{Value: "America/Winnipeg", Label: "America/Winnipeg (CST/CDT)", Code: "CST"},
	{Value: "America/Mexico_City", Label: "America/Mexico_City (CST/CDT)", Code: "CST"},
	{Value: "America/Dallas", Label: "America/Dallas (CST/CDT)", Code: "CST"},
	{Value: "America/Denver", Label: "America/Denver (MST/MDT)", Code: "MST"},
	{Value: "America/Edmonton", Label: "America/Edmonton (MST/MDT)", Code: "MST"},
	{Value: "America/Calgary", Label: "America/Calgary (MST/MDT)", Code: "MST"},
	{Value: "America/Phoenix", Label: "America/Phoenix (MST)", Code: "MST"},
	{Value: "America/Los_Angeles", Label: "America/Los_Angeles (PST/PDT)", Code: "PST"},
	{Value: "America/Vancouver", Label: "America/Vancouver (PST/PDT)", Code: "PST"},
	{Value: "America/Seattle", Label: "America/Seattle (PST/PDT)", Code: "PST"},
	{Value: "America/San_Francisco", Label: "America/San_Francisco (PST/PDT)", Code: "PST"},
	{Value: "America/Anchorage", Label: "America/Anchorage (AKST/AKDT)", Code: "AKST"},
	{Value: "Pacific/Honolulu", Label: "Pacific/Honolulu (HST)", Code: "HST"},
	{Value: "America/Halifax", Label: "America/Halifax (AST/ADT)", Code: "AST"},
	{Value: "Atlantic/Bermuda", Label: "Atlantic/Bermuda (AST/ADT)", Code: "AST"},
	{Value: "America/St_Johns", Label: "America/St_Johns (NST/NDT)", Code: "NST"},

	// South America
	{Value: "America/Sao_Paulo", Label: "America/Sao_Paulo (BRT/BRST)", Code: "BRT"},
	{Value: "America/Argentina/Buenos_Aires", Label: "America/Buenos_Aires (ART)", Code: "ART"},
	{Value: "America/Caracas", Label: "America/Caracas (VET)", Code: "VET"},
	{Value: "America/Lima", Label: "America/Lima (PET)", Code: "PET"},
	{Value: "America/Santiago", Label: "America/Santiago (CLT/CLST)", Code: "CLT"},

	// Europe
	{Value: "Europe/London", Label: "Europe/London (GMT/BST)", Code: "GMT"},
	{Value: "Europe/Dublin", Label: "Europe/Dublin (GMT/IST)", Code: "GMT"},
	{Value: "Europe/Lisbon", Label: "Europe/Lisbon (WET/WEST)", Code: "WET"},
	{Value: "Europe/Paris", Label: "Europe/Paris (CET/CEST)", Code: "CET"},
	{Value: "Europe/Berlin", Label: "Europe/Berlin (CET/CEST)", Code: "CET"},
	{Value: "Europe/Rome", Label: "Europe/Rome (CET/CEST)", Code: "CET"},
	{Value: "Europe/Madrid", Label: "Europe/Madrid (CET/CEST)", Code: "CET"},
	{Value: "Europe/Amsterdam", Label: "Europe/Amsterdam (CET/CEST)", Code: "CET"},
	{Value: "Europe/Brussels", Label: "Europe/Brussels (CET/CEST)", Code: "CET"},
	{Value: "Europe/Vienna", Label: "Europe/Vienna (CET/CEST)", Code: "CET"},
	{Value: "Europe/Zurich", Label: "Europe/Zurich (CET/CEST)", Code: "CET"},
	{Value: "Europe/Helsinki", Label: "Europe/Helsinki (EET/EEST)", Code: "EET"},
	{Value: "Europe/Athens", Label: "Europe/Athens (EET/EEST)", Code: "EET"},
	{Value: "Europe/Bucharest", Label: "Europe/Bucharest (EET/EEST)", Code: "EET"},
	{Value: "Europe/Sofia", Label: "Europe/Sofia (EET/EEST)", Code: "EET"},
	{Value: "Europe/Kiev", Label: "Europe/Kiev (EET/EEST)", Code: "EET"},
	{Value: "Europe/Moscow", Label: "Europe/Moscow (MSK)", Code: "MSK"},
	{Value: "Europe/Istanbul", Label: "Europe/Istanbul (TRT)", Code: "TRT"},

	// Middle East & Asia
	{Value: "Asia/Qatar", Label: "Asia/Qatar (AST)", Code: "AST"},
	{Value: "Asia/Dubai", Label: "Asia/Dubai (GST)", Code: "GST"},
	{Value: "Asia/Tehran", Label: "Asia/Tehran (IRST/IRDT)", Code: "IRST"},
	{Value: "Asia/Jerusalem", Label: "Asia/Jerusalem (IST/IDT)", Code: "IST"},
	{Value: "Asia/Riyadh", Label: "Asia/Riyadh (AST)", Code: "AST"},
	{Value: "Asia/Kolkata", Label: "Asia/Kolkata (IST)", Code: "IST"},
	{Value: "Asia/Mumbai", Label: "Asia/Mumbai (IST)", Code: "IST"},
	{Value: "Asia/Dhaka", Label: "Asia/Dhaka (BST)", Code: "BST"},
	{Value: "Asia/Karachi", Label: "Asia/Karachi (PKT)", Code: "PKT"},
	{Value: "Asia/Bangkok", Label: "Asia/Bangkok (ICT)", Code: "ICT"},
	{Value: "Asia/Singapore", Label: "Asia/Singapore (SGT)", Code: "SGT"},
	{Value: "Asia/Manila", Label: "Asia/Manila (PST)", Code: "PST"},
	{Value: "Asia/Jakarta", Label: "Asia/Jakarta (WIB)", Code: "WIB"},
	{Value: "Asia/Kuala_Lumpur", Label: "Asia/Kuala_Lumpur (MYT)", Code: "MYT"},
	{Value: "Asia/Shanghai", Label: "Asia/Shanghai (CST)", Code: "CST"},
	{Value: "Asia/Beijing", Label: "Asia/Beijing (CST)", Code: "CST"},
	{Value: "Asia/Hong_Kong", Label: "Asia/Hong_Kong (HKT)", Code: "HKT"},
	{Value: "Asia/Taipei", Label: "Asia/Taipei (CST)", Code: "CST"},
	{Value: "Asia/Tokyo", Label: "Asia/Tokyo (JST)", Code: "JST"},
	{Value: "Asia/Seoul", Label: "Asia/Seoul (KST)", Code: "KST"},

	// Australia & Pacific
	{Value: "Australia/Sydney", Label: "Australia/Sydney (AEST/AEDT)", Code: "AEST"},
	{Value: "Australia/Melbourne", Label: "Australia/Melbourne (AEST/AEDT)", Code: "AEST"},
	{Value: "Australia/Brisbane", Label: "Australia/Brisbane (AEST)", Code: "AEST"},
	{Value: "Australia/Perth", Label: "Australia/Perth (AWST)", Code: "AWST"},
	{Value: "Australia/Adelaide", Label: "Australia/Adelaide (ACST/ACDT)", Code: "ACST"},
	{Value: "Pacific/Auckland", Label: "Pacific/Auckland (NZST/NZDT)", Code: "NZST"},
	{Value: "Pacific/Fiji", Label: "Pacific/Fiji (FJT/FJST)", Code: "FJT"},
	{Value: "Pacific/Guam", Label: "Pacific/Guam (ChST)", Code: "ChST"},
	{Value: "Pacific/Tahiti", Label: "Pacific/Tahiti (TAHT)", Code: "TAHT"},

	// Africa
	{Value: "Africa/Cairo", Label: "Africa/Cairo (EET)", Code: "EET"},
	{Value: "Africa/Lagos", Label: "Africa/Lagos (WAT)", Code: "WAT"},
	{Value: "Africa/Johannesburg", Label: "Africa/Johannesburg (SAST)", Code: "SAST"},
	{Value: "Africa/Nairobi", Label: "Africa/Nairobi (EAT)", Code: "EAT"},
	{Value: "Africa/Casablanca", Label: "Africa/Casablanca (WET/WEST)", Code: "WET"},
}

// IsSupportedTimeZone reports whether value is in TimeZones.
func IsSupportedTimeZone(value string) bool {
	for _, tz := range TimeZones {
		if tz.Value == value {
			return true
		}
	}
	return false
}
