package verseref

// bookDE maps English book names to their German equivalents as used by the
// study database. Numeric-prefixed books carry the bare "1 "/"2 " prefix on
// the English side and the dotted "1. "/"2. " prefix on the German side.
var bookDE = map[string]string{
	"Genesis": "1. Mose", "Exodus": "2. Mose", "Leviticus": "3. Mose",
	"Numbers": "4. Mose", "Deuteronomy": "5. Mose",
	"Joshua": "Josua", "Judges": "Richter", "Ruth": "Rut",
	"1 Samuel": "1. Samuel", "2 Samuel": "2. Samuel",
	"1 Kings": "1. Könige", "2 Kings": "2. Könige",
	"1 Chronicles": "1. Chronik", "2 Chronicles": "2. Chronik",
	"Ezra": "Esra", "Nehemiah": "Nehemia", "Esther": "Ester",
	"Job": "Hiob", "Psalms": "Psalm", "Psalm": "Psalm",
	"Proverbs": "Sprüche", "Ecclesiastes": "Prediger",
	"Song of Solomon": "Hohelied", "Isaiah": "Jesaja", "Jeremiah": "Jeremia",
	"Lamentations": "Klagelieder", "Ezekiel": "Hesekiel", "Daniel": "Daniel",
	"Hosea": "Hosea", "Joel": "Joel", "Amos": "Amos", "Obadiah": "Obadja",
	"Jonah": "Jona", "Micah": "Micha", "Nahum": "Nahum",
	"Habakkuk": "Habakuk", "Zephaniah": "Zefanja", "Haggai": "Haggai",
	"Zechariah": "Sacharja", "Malachi": "Maleachi",
	"Matthew": "Matthäus", "Mark": "Markus", "Luke": "Lukas", "John": "Johannes",
	"Acts": "Apostelgeschichte",
	"Romans": "Römer",
	"1 Corinthians": "1. Korinther", "2 Corinthians": "2. Korinther",
	"Galatians": "Galater", "Ephesians": "Epheser", "Philippians": "Philipper",
	"Colossians": "Kolosser",
	"1 Thessalonians": "1. Thessalonicher", "2 Thessalonians": "2. Thessalonicher",
	"1 Timothy": "1. Timotheus", "2 Timothy": "2. Timotheus",
	"Titus": "Titus", "Philemon": "Philemon", "Hebrews": "Hebräer",
	"James": "Jakobus",
	"1 Peter": "1. Petrus", "2 Peter": "2. Petrus",
	"1 John": "1. Johannes", "2 John": "2. Johannes", "3 John": "3. Johannes",
	"Jude": "Judas", "Revelation": "Offenbarung",
}

// bookEN is the inverse mapping. "Psalms" and "Psalm" collide on "Psalm";
// the shorter English form wins so the round trip stays stable.
var bookEN = func() map[string]string {
	m := make(map[string]string, len(bookDE))
	for en, de := range bookDE {
		if existing, ok := m[de]; ok && len(existing) <= len(en) {
			continue
		}
		m[de] = en
	}
	return m
}()
