package panchanga

// Static reference tables for the lunar calendar. These are data, not logic:
// calculators index into them with 1-based numbers and the presentation layer
// consumes the names verbatim.

// TithiNames lists the 30 tithi names in order: 15 of the waxing (Shukla)
// fortnight ending in Purnima, then 15 of the waning (Krishna) fortnight
// ending in Amavasya.
var TithiNames = [30]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

// NakshatraNames lists the 27 lunar mansions in ecliptic order starting at
// 0° (Ashwini).
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// MasaNames lists the 12 lunar month names starting from Chaitra.
var MasaNames = [12]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha",
	"Shravana", "Bhadrapada", "Ashwina", "Kartika",
	"Margashirsha", "Pausha", "Magha", "Phalguna",
}
