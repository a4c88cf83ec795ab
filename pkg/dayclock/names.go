package dayclock

// MuhurtaName is one entry of the traditional 30-muhurta table.
type MuhurtaName struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// MuhurtaNames is the traditional sequence of the 30 muhurtas of a
// sunrise-to-sunrise day, indexed by muhurta number minus one. The first 15
// span daytime, the second 15 the night. Names and meanings are reference
// data consumed verbatim by display layers.
var MuhurtaNames = [MuhurtasPerDay]MuhurtaName{
	{"Rudra", "fierce, transformative energy"},
	{"Ahi", "serpent power, hidden strength"},
	{"Mitra", "friendship and harmony"},
	{"Pitri", "honoring the ancestors"},
	{"Vasu", "wealth and abundance"},
	{"Varaha", "upliftment and rescue"},
	{"Vishvedeva", "all the gods together"},
	{"Vidhi", "order and decree; the victorious Abhijit"},
	{"Satamukhi", "hundred-faced, manifold power"},
	{"Puruhuta", "much-invoked Indra"},
	{"Vahini", "the carrying current"},
	{"Naktanakara", "maker of the night"},
	{"Varuna", "cosmic waters and law"},
	{"Aryaman", "nobility and hospitality"},
	{"Bhaga", "fortune and due share"},
	{"Girisha", "lord of the mountain"},
	{"Ajapada", "the one-footed goat, austerity"},
	{"Ahirbudhnya", "serpent of the deep"},
	{"Pushya", "nourishment and flourishing"},
	{"Ashvini", "the healing horsemen"},
	{"Yama", "restraint and discipline"},
	{"Agni", "sacred fire, purification"},
	{"Vidhatri", "the arranger, creative support"},
	{"Kanda", "rooted strength"},
	{"Aditi", "boundless freedom"},
	{"Jiva", "the living breath; Amrita, the deathless"},
	{"Vishnu", "preservation and pervasion"},
	{"Yumigadyuti", "radiant splendor"},
	{"Brahma", "creative absorption, the still hour"},
	{"Samudram", "the ocean, vast completion"},
}
