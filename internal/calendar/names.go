package calendar

import (
	"strconv"
	"strings"
	"time"
)

var bengaliMonthNames = [12]string{
	"বৈশাখ", "জ্যৈষ্ঠ", "আষাঢ়", "শ্রাবণ", "ভাদ্র", "আশ্বিন",
	"কার্তিক", "অগ্রহায়ণ", "পৌষ", "মাঘ", "ফাল্গুন", "চৈত্র",
}

var bengaliMonthLatin = [12]string{
	"Boishakh", "Joishtho", "Asharh", "Srabon", "Bhadro", "Ashwin",
	"Kartik", "Ogrohayon", "Poush", "Magh", "Falgun", "Chaitra",
}

// Two months per ritu: grishmo, borsha, shorot, hemonto, sheet, boshonto.
var bengaliSeasons = [12]string{
	"গ্রীষ্ম", "গ্রীষ্ম", "বর্ষা", "বর্ষা", "শরৎ", "শরৎ",
	"হেমন্ত", "হেমন্ত", "শীত", "শীত", "বসন্ত", "বসন্ত",
}

var bengaliSeasonsLatin = [12]string{
	"Summer", "Summer", "Monsoon", "Monsoon", "Autumn", "Autumn",
	"Late Autumn", "Late Autumn", "Winter", "Winter", "Spring", "Spring",
}

var hijriMonthNames = [12]string{
	"محرم", "صفر", "ربيع الأول", "ربيع الثاني", "جمادى الأولى", "جمادى الآخرة",
	"رجب", "شعبان", "رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

var hijriMonthNamesBengali = [12]string{
	"মহররম", "সফর", "রবিউল আউয়াল", "রবিউস সানি", "জমাদিউল আউয়াল", "জমাদিউস সানি",
	"রজব", "শাবান", "রমজান", "শাওয়াল", "জিলকদ", "জিলহজ্জ",
}

var hijriMonthLatin = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani", "Jumada al-Ula", "Jumada al-Akhirah",
	"Rajab", "Shaban", "Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

// Gregorian seasons by month, northern hemisphere.
var gregorianSeasons = [12]string{
	"Winter", "Winter", "Spring", "Spring", "Summer", "Summer",
	"Autumn", "Autumn", "Autumn", "Winter", "Winter", "Winter",
}

var bengaliWeekdays = [7]string{"রবি", "সোম", "মঙ্গল", "বুধ", "বৃহঃ", "শুক্র", "শনি"}

var englishWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const bengaliZero = '০'

// GregorianSeason returns the season label for a Gregorian month.
func GregorianSeason(m time.Month) string {
	return gregorianSeasons[m-1]
}

// WeekdayName returns the three letter English weekday abbreviation.
func WeekdayName(w time.Weekday) string {
	return englishWeekdays[w]
}

// WeekdayNameBengali returns the Bengali weekday abbreviation.
func WeekdayNameBengali(w time.Weekday) string {
	return bengaliWeekdays[w]
}

// BengaliDigits formats n using Bengali numerals.
func BengaliDigits(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(bengaliZero + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
