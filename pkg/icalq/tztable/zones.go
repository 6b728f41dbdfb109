package tztable

// builtinRules covers the zones commonly seen in calendar feeds. The
// transition anchors are the reference DTSTART values published in the
// corresponding VTIMEZONE definitions.
var builtinRules = []Rule{
	{ID: "UTC", StandardOffset: "+0000"},
	{ID: "Etc/UTC", StandardOffset: "+0000"},
	{ID: "GMT", StandardOffset: "+0000"},

	{
		ID:             "Europe/London",
		StandardOffset: "+0000",
		DaylightOffset: "+0100",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T010000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T020000"},
	},
	{
		ID:             "Europe/Dublin",
		StandardOffset: "+0000",
		DaylightOffset: "+0100",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T010000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T020000"},
	},
	{
		ID:             "Europe/Paris",
		StandardOffset: "+0100",
		DaylightOffset: "+0200",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T030000"},
	},
	{
		ID:             "Europe/Berlin",
		StandardOffset: "+0100",
		DaylightOffset: "+0200",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T030000"},
	},
	{
		ID:             "Europe/Madrid",
		StandardOffset: "+0100",
		DaylightOffset: "+0200",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T030000"},
	},
	{
		ID:             "Europe/Rome",
		StandardOffset: "+0100",
		DaylightOffset: "+0200",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T030000"},
	},
	{
		ID:             "Europe/Amsterdam",
		StandardOffset: "+0100",
		DaylightOffset: "+0200",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T030000"},
	},
	{
		ID:             "Europe/Zurich",
		StandardOffset: "+0100",
		DaylightOffset: "+0200",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T030000"},
	},
	{
		ID:             "Europe/Helsinki",
		StandardOffset: "+0200",
		DaylightOffset: "+0300",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU", Anchor: "19810329T030000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU", Anchor: "19961027T040000"},
	},
	{
		ID:             "Europe/Moscow",
		StandardOffset: "+0300",
	},

	{
		ID:             "America/New_York",
		StandardOffset: "-0500",
		DaylightOffset: "-0400",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=2SU", Anchor: "20070311T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=11;BYDAY=1SU", Anchor: "20071104T020000"},
	},
	{
		ID:             "America/Chicago",
		StandardOffset: "-0600",
		DaylightOffset: "-0500",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=2SU", Anchor: "20070311T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=11;BYDAY=1SU", Anchor: "20071104T020000"},
	},
	{
		ID:             "America/Denver",
		StandardOffset: "-0700",
		DaylightOffset: "-0600",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=2SU", Anchor: "20070311T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=11;BYDAY=1SU", Anchor: "20071104T020000"},
	},
	{
		ID:             "America/Phoenix",
		StandardOffset: "-0700",
	},
	{
		ID:             "America/Los_Angeles",
		StandardOffset: "-0800",
		DaylightOffset: "-0700",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=3;BYDAY=2SU", Anchor: "20070311T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=11;BYDAY=1SU", Anchor: "20071104T020000"},
	},
	{
		ID:             "America/Sao_Paulo",
		StandardOffset: "-0300",
	},

	{ID: "Asia/Tokyo", StandardOffset: "+0900"},
	{ID: "Asia/Seoul", StandardOffset: "+0900"},
	{ID: "Asia/Shanghai", StandardOffset: "+0800"},
	{ID: "Asia/Singapore", StandardOffset: "+0800"},
	{ID: "Asia/Kolkata", StandardOffset: "+0530"},
	{ID: "Asia/Dubai", StandardOffset: "+0400"},

	{
		ID:             "Australia/Sydney",
		StandardOffset: "+1000",
		DaylightOffset: "+1100",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=1SU", Anchor: "20081005T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=4;BYDAY=1SU", Anchor: "20080406T030000"},
	},
	{
		ID:             "Australia/Melbourne",
		StandardOffset: "+1000",
		DaylightOffset: "+1100",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=10;BYDAY=1SU", Anchor: "20081005T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=4;BYDAY=1SU", Anchor: "20080406T030000"},
	},
	{
		ID:             "Pacific/Auckland",
		StandardOffset: "+1200",
		DaylightOffset: "+1300",
		DaylightStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=9;BYDAY=-1SU", Anchor: "20080928T020000"},
		StandardStart:  Transition{RRule: "FREQ=YEARLY;BYMONTH=4;BYDAY=1SU", Anchor: "20080406T030000"},
	},
}
