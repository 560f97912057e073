package bindings

// Enumeration values mirrored from the ICU C headers. They are part of the
// stable ICU ABI; the cgo layer passes them through unchanged. Keeping them
// outside the cgo files makes them available to stub builds as well.

// Calendar kinds (UCalendarType). Default aliases Traditional in the C enum.
const (
	CalendarTraditional = 0
	CalendarDefault     = 0
	CalendarGregorian   = 1
)

// Calendar date fields (UCalendarDateFields). Only fields the public wrapper
// exposes are named.
const (
	CalendarFieldEra         = 0
	CalendarFieldYear        = 1
	CalendarFieldMonth       = 2
	CalendarFieldWeekOfYear  = 3
	CalendarFieldDate        = 5
	CalendarFieldDayOfYear   = 6
	CalendarFieldDayOfWeek   = 7
	CalendarFieldAMPM        = 9
	CalendarFieldHourOfDay   = 11
	CalendarFieldMinute      = 12
	CalendarFieldSecond      = 13
	CalendarFieldMillisecond = 14
	CalendarFieldZoneOffset  = 15
)

// Date/time format styles (UDateFormatStyle).
const (
	DateFormatFull    = 0
	DateFormatLong    = 1
	DateFormatMedium  = 2
	DateFormatShort   = 3
	DateFormatDefault = DateFormatMedium
	DateFormatNone    = -1
	DateFormatPattern = -2
)

// Number format styles (UNumberFormatStyle).
const (
	NumberFormatPattern    = 0
	NumberFormatDecimal    = 1
	NumberFormatCurrency   = 2
	NumberFormatPercent    = 3
	NumberFormatScientific = 4
	NumberFormatSpellout   = 5
)

// Number format attributes (UNumberFormatAttribute).
const (
	NumberAttrGroupingUsed      = 1
	NumberAttrMaxIntegerDigits  = 3
	NumberAttrMinIntegerDigits  = 4
	NumberAttrMaxFractionDigits = 6
	NumberAttrMinFractionDigits = 7
)

// Break iterator kinds (UBreakIteratorType).
const (
	BreakCharacter = 0
	BreakWord      = 1
	BreakLine      = 2
	BreakSentence  = 3
)

// BreakDone is returned by position operations at the end of iteration
// (UBRK_DONE).
const BreakDone = -1

// Transliteration directions (UTransDirection).
const (
	TransForward = 0
	TransReverse = 1
)

// Normalization forms selecting a singleton UNormalizer2 instance.
const (
	NormNFC = iota
	NormNFD
	NormNFKC
	NormNFKD
)

// Plural rule kinds (UPluralType).
const (
	PluralCardinal = 0
	PluralOrdinal  = 1
)

// Collation strengths (UCollationStrength).
const (
	CollationPrimary    = 0
	CollationSecondary  = 1
	CollationTertiary   = 2
	CollationQuaternary = 3
	CollationIdentical  = 15
)

// Collation attributes and attribute values (UColAttribute /
// UColAttributeValue subset).
const (
	CollationAttrFrenchCollation = 0
	CollationAttrCaseFirst       = 2
	CollationAttrCaseLevel       = 3
	CollationAttrStrength        = 5
	CollationAttrNumericOrdering = 7

	CollationValueDefault    = -1
	CollationValueOff        = 16
	CollationValueOn         = 17
	CollationValueLowerFirst = 24
	CollationValueUpperFirst = 25
)
