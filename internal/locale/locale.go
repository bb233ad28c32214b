// Package locale provides display names for weekdays and months in the
// languages the API serves.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Supported lists the served languages. The first entry is the fallback.
var Supported = []language.Tag{
	language.English,
	language.Arabic,
}

var matcher = language.NewMatcher(Supported)

var weekdayNames = map[language.Tag][7]string{
	language.English: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	language.Arabic:  {"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
}

var civilMonthNames = map[language.Tag][12]string{
	language.English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	language.Arabic: {
		"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
		"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
	},
}

var hijriMonthNames = map[language.Tag][12]string{
	language.English: {
		"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
		"Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Shaban",
		"Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
	},
	language.Arabic: {
		"محرم", "صفر", "ربيع الأول", "ربيع الآخر",
		"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
		"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
	},
}

// Match picks the best supported language for the given preferences, which
// may be BCP 47 tags or Accept-Language header values. Empty or unparsable
// input yields the fallback.
func Match(prefs ...string) language.Tag {
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	for _, s := range Supported {
		if b, _ := s.Base(); b == base {
			return s
		}
	}
	return Supported[0]
}

// Parse validates a configured language tag.
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", s, err)
	}
	return tag, nil
}

// WeekdayName returns the name of weekday (0 = Sunday) in tag's language.
func WeekdayName(tag language.Tag, weekday int) string {
	names := weekdayNames[Match(tag.String())]
	return names[mod(weekday, 7)]
}

// CivilMonthName returns the name of a Gregorian/Julian month (1-12).
func CivilMonthName(tag language.Tag, month int) string {
	names := civilMonthNames[Match(tag.String())]
	return names[mod(month-1, 12)]
}

// HijriMonthName returns the name of a Hijri month (1-12).
func HijriMonthName(tag language.Tag, month int) string {
	names := hijriMonthNames[Match(tag.String())]
	return names[mod(month-1, 12)]
}

// Ordinal returns the English ordinal form of n (1st, 2nd, 3rd, 4th, 11th).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
