// Package unicodeprop holds the Unicode property names and values that
// ECMAScript accepts in \p{...} escapes, keyed by the edition year that
// introduced them.
package unicodeprop

import "strings"

// sinceSet maps a name to the first edition year that accepts it.
type sinceSet map[string]int

func newSinceSet(byYear map[int]string) sinceSet {
	s := sinceSet{}
	for year, names := range byYear {
		for _, name := range strings.Fields(names) {
			s[name] = year
		}
	}
	return s
}

func (s sinceSet) has(version int, name string) bool {
	since, ok := s[name]
	return ok && version >= since
}

var (
	generalCategoryNames = map[string]struct{}{
		"General_Category": {},
		"gc":               {},
	}
	scriptNames = map[string]struct{}{
		"Script":            {},
		"Script_Extensions": {},
		"sc":                {},
		"scx":               {},
	}
)

var generalCategoryValues = newSinceSet(map[int]string{
	2018: "C Cased_Letter Cc Cf Close_Punctuation Cn Co Combining_Mark " +
		"Connector_Punctuation Control Cs Currency_Symbol Dash_Punctuation " +
		"Decimal_Number Enclosing_Mark Final_Punctuation Format " +
		"Initial_Punctuation L LC Letter Letter_Number Line_Separator Ll Lm Lo " +
		"Lowercase_Letter Lt Lu M Mark Math_Symbol Mc Me Mn Modifier_Letter " +
		"Modifier_Symbol N Nd Nl No Nonspacing_Mark Number Open_Punctuation " +
		"Other Other_Letter Other_Number Other_Punctuation Other_Symbol P " +
		"Paragraph_Separator Pc Pd Pe Pf Pi Po Private_Use Ps Punctuation S Sc " +
		"Separator Sk Sm So Space_Separator Spacing_Mark Surrogate Symbol " +
		"Titlecase_Letter Unassigned Uppercase_Letter Z Zl Zp Zs cntrl digit punct",
})

var scriptValues = newSinceSet(map[int]string{
	2018: "Adlam Adlm Aghb Ahom Anatolian_Hieroglyphs Arab Arabic Armenian Armi " +
		"Armn Avestan Avst Bali Balinese Bamu Bamum Bass Bassa_Vah Batak Batk " +
		"Beng Bengali Bhaiksuki Bhks Bopo Bopomofo Brah Brahmi Brai Braille " +
		"Bugi Buginese Buhd Buhid Cakm Canadian_Aboriginal Cans Cari Carian " +
		"Caucasian_Albanian Chakma Cham Cher Cherokee Common Copt Coptic Cprt " +
		"Cuneiform Cypriot Cyrillic Cyrl Deseret Deva Devanagari Dsrt Dupl " +
		"Duployan Egyp Egyptian_Hieroglyphs Elba Elbasan Ethi Ethiopic Geor " +
		"Georgian Glag Glagolitic Gonm Goth Gothic Gran Grantha Greek Grek " +
		"Gujarati Gujr Gurmukhi Guru Han Hang Hangul Hani Hano Hanunoo Hatr " +
		"Hatran Hebr Hebrew Hira Hiragana Hluw Hmng Hung Imperial_Aramaic " +
		"Inherited Inscriptional_Pahlavi Inscriptional_Parthian Ital Java " +
		"Javanese Kaithi Kali Kana Kannada Katakana Kayah_Li Khar Kharoshthi " +
		"Khmer Khmr Khoj Khojki Khudawadi Knda Kthi Lana Lao Laoo Latin Latn " +
		"Lepc Lepcha Limb Limbu Lina Linb Linear_A Linear_B Lisu Lyci Lycian " +
		"Lydi Lydian Mahajani Mahj Malayalam Mand Mandaic Mani Manichaean Marc " +
		"Marchen Masaram_Gondi Meetei_Mayek Mend Mende_Kikakui Merc Mero " +
		"Meroitic_Cursive Meroitic_Hieroglyphs Miao Mlym Modi Mong Mongolian " +
		"Mro Mroo Mtei Mult Multani Myanmar Mymr Nabataean Narb Nbat " +
		"New_Tai_Lue Newa Nko Nkoo Nshu Nushu Ogam Ogham Ol_Chiki Olck " +
		"Old_Hungarian Old_Italic Old_North_Arabian Old_Permic Old_Persian " +
		"Old_South_Arabian Old_Turkic Oriya Orkh Orya Osage Osge Osma Osmanya " +
		"Pahawh_Hmong Palm Palmyrene Pau_Cin_Hau Pauc Perm Phag Phags_Pa Phli " +
		"Phlp Phnx Phoenician Plrd Prti Psalter_Pahlavi Qaac Qaai Rejang Rjng " +
		"Runic Samaritan Samr Sarb Saur Saurashtra Sgnw Sharada Shavian Shaw " +
		"Shrd Sidd Siddham SignWriting Sind Sinh Sinhala Sora Sora_Sompeng " +
		"Soyo Soyombo Sund Sundanese Sylo Syloti_Nagri Syrc Syriac Tagalog " +
		"Tagb Tagbanwa Tai_Le Tai_Tham Tai_Viet Takr Takri Tale Talu Tamil " +
		"Taml Tang Tangut Tavt Telu Telugu Tfng Tglg Thaa Thaana Thai Tibetan " +
		"Tibt Tifinagh Tirh Tirhuta Ugar Ugaritic Vai Vaii Wara Warang_Citi " +
		"Xpeo Xsux Yi Yiii Zanabazar_Square Zanb Zinh Zyyy",
	2019: "Dogr Dogra Gong Gunjala_Gondi Hanifi_Rohingya Maka Makasar " +
		"Medefaidrin Medf Old_Sogdian Rohg Sogd Sogdian Sogo",
	2020: "Elym Elymaic Hmnp Nand Nandinagari Nyiakeng_Puachue_Hmong Wancho Wcho",
	2021: "Chorasmian Chrs Diak Dives_Akuru Khitan_Small_Script Kits Yezi Yezidi",
})

var binaryProperties = newSinceSet(map[int]string{
	2018: "AHex ASCII ASCII_Hex_Digit Alpha Alphabetic Any Assigned Bidi_C " +
		"Bidi_Control Bidi_M Bidi_Mirrored CI CWCF CWCM CWKCF CWL CWT CWU " +
		"Case_Ignorable Cased Changes_When_Casefolded Changes_When_Casemapped " +
		"Changes_When_Lowercased Changes_When_NFKC_Casefolded " +
		"Changes_When_Titlecased Changes_When_Uppercased DI Dash " +
		"Default_Ignorable_Code_Point Dep Deprecated Dia Diacritic Emoji " +
		"Emoji_Component Emoji_Modifier Emoji_Modifier_Base Emoji_Presentation " +
		"Ext Extender Gr_Base Gr_Ext Grapheme_Base Grapheme_Extend Hex " +
		"Hex_Digit IDC IDS IDSB IDST IDS_Binary_Operator IDS_Trinary_Operator " +
		"ID_Continue ID_Start Ideo Ideographic Join_C Join_Control LOE " +
		"Logical_Order_Exception Lower Lowercase Math NChar " +
		"Noncharacter_Code_Point Pat_Syn Pat_WS Pattern_Syntax " +
		"Pattern_White_Space QMark Quotation_Mark RI Radical " +
		"Regional_Indicator SD STerm Sentence_Terminal Soft_Dotted Term " +
		"Terminal_Punctuation UIdeo Unified_Ideograph Upper Uppercase VS " +
		"Variation_Selector White_Space XIDC XIDS XID_Continue XID_Start space",
	2019: "Extended_Pictographic",
	2021: "EBase EComp EMod EPres ExtPict",
})

// IsValid reports whether name=value is a valid \p{name=value} expression
// for the given edition year.
func IsValid(version int, name, value string) bool {
	if _, ok := generalCategoryNames[name]; ok {
		return generalCategoryValues.has(version, value)
	}
	if _, ok := scriptNames[name]; ok {
		return scriptValues.has(version, value)
	}
	return false
}

// IsValidLone reports whether name is a binary property usable as \p{name}
// for the given edition year. Lone General_Category values are checked with
// IsValid.
func IsValidLone(version int, name string) bool {
	return binaryProperties.has(version, name)
}
