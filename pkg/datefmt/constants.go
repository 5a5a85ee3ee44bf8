package datefmt

// Placeholder names recognized inside `${...}` template tokens.
const (
	PlaceholderYear        = "yyyy"
	PlaceholderMonth       = "mm"
	PlaceholderDay         = "dd"
	PlaceholderHour        = "HH"
	PlaceholderMinute      = "MM"
	PlaceholderSecond      = "SS"
	PlaceholderMillisecond = "ms"

	// PlaceholderTZMinutes renders the zone offset using the JavaScript
	// getTimezoneOffset sign (minutes west of UTC are positive).
	PlaceholderTZMinutes = "tzMinutes"

	// PlaceholderTZName renders the local IANA zone name. The name is resolved
	// once per process and is not refreshed if the machine zone changes while
	// the process runs.
	PlaceholderTZName = "tzName"
)

// DefaultTemplate is used whenever a caller supplies an empty template.
const DefaultTemplate = "${yyyy}-${mm}-${dd} ${HH}:${MM}:${SS}.${ms}"

// DefaultKeyword is the CLI token that selects DefaultTemplate.
const DefaultKeyword = "default"

// AvailablePlaceholders lists the placeholder vocabulary in display order.
var AvailablePlaceholders = []string{
	PlaceholderYear,
	PlaceholderMonth,
	PlaceholderDay,
	PlaceholderHour,
	PlaceholderMinute,
	PlaceholderSecond,
	PlaceholderMillisecond,
	PlaceholderTZMinutes,
	PlaceholderTZName,
}

// PlaceholderDescriptions is used for help output.
var PlaceholderDescriptions = map[string]string{
	PlaceholderYear:        "4-digit calendar year",
	PlaceholderMonth:       "month 01-12",
	PlaceholderDay:         "day of month 01-31",
	PlaceholderHour:        "hour 00-23",
	PlaceholderMinute:      "minute 00-59",
	PlaceholderSecond:      "second 00-59",
	PlaceholderMillisecond: "millisecond 000-999",
	PlaceholderTZMinutes:   "zone offset in minutes, positive west of UTC (e.g. 0300, -0060)",
	PlaceholderTZName:      "local IANA zone name, resolved once per process",
}

// IsPlaceholder reports whether name belongs to the vocabulary.
func IsPlaceholder(name string) bool {
	_, ok := PlaceholderDescriptions[name]
	return ok
}

// PlaceholderPolicy controls what happens to `${token}` when token is not in
// the vocabulary.
type PlaceholderPolicy string

const (
	// PolicyPermissive keeps unknown tokens verbatim in the output.
	PolicyPermissive PlaceholderPolicy = "permissive"
	// PolicyStrict rejects templates containing unknown tokens.
	PolicyStrict PlaceholderPolicy = "strict"
)
