package questionbank

import "github.com/abhisek/careerquest/internal/locale"

// q builds a single-answer question.
func q(id, en, hi string, options []string, correct string) Question {
	return Question{
		BaseID:  id,
		Text:    map[locale.Locale]string{locale.English: en, locale.Hindi: hi},
		Options: options,
		Correct: []string{correct},
		Kind:    Single,
	}
}

var bank = map[Category]map[Difficulty][]Question{
	CategoryMath: {
		Easy:     {q("m1", "What is 5 + 7?", "5 + 7 क्या है?", []string{"12", "10", "14", "11"}, "12")},
		Medium:   {q("m2", "Solve: 2x + 3 = 7", "हल करें: 2x + 3 = 7", []string{"x=2", "x=3", "x=1", "x=4"}, "x=2")},
		Hard:     {q("m3", "Integrate: ∫x dx", "समाकलन: ∫x dx", []string{"x^2/2", "x", "x^3/3", "2x"}, "x^2/2")},
		Advanced: {q("m4", "Find the limit: lim(x->0) sin(x)/x", "सीमा ज्ञात करें: lim(x->0) sin(x)/x", []string{"1", "0", "∞", "-1"}, "1")},
	},
	CategoryBiology: {
		Easy:     {q("b1", "What is the powerhouse of the cell?", "कोशिका का पावरहाउस क्या है?", []string{"Mitochondria", "Nucleus", "Ribosome", "Golgi"}, "Mitochondria")},
		Medium:   {q("b2", "What is DNA made of?", "डीएनए किससे बना है?", []string{"Nucleotides", "Amino acids", "Lipids", "Carbohydrates"}, "Nucleotides")},
		Hard:     {q("b3", "What is photosynthesis?", "प्रकाश संश्लेषण क्या है?", []string{"CO2 + H2O -> Glucose", "O2 -> CO2"}, "CO2 + H2O -> Glucose")},
		Advanced: {q("b4", "What is the role of tRNA in protein synthesis?", "प्रोटीन संश्लेषण में tRNA की भूमिका क्या है?", []string{"Carries amino acids", "Transcribes DNA"}, "Carries amino acids")},
	},
	CategoryPhysics: {
		Easy:     {q("p1", "Unit of force?", "बल की इकाई?", []string{"Newton", "Joule", "Watt", "Pascal"}, "Newton")},
		Medium:   {q("p2", "F = ma, find a if F=10, m=2", "F = ma, a ज्ञात करें यदि F=10, m=2", []string{"5", "10", "2", "20"}, "5")},
		Hard:     {q("p3", "Work done: F=5N, d=2m", "कार्य: F=5N, d=2m", []string{"10J", "5J", "15J", "20J"}, "10J")},
		Advanced: {q("p4", "What is the Schrödinger equation used for?", "श्रोडिंगर समीकरण का उपयोग किस लिए होता है?", []string{"Quantum states", "Classical mechanics"}, "Quantum states")},
	},
	CategoryChemistry: {
		Easy:     {q("c1", "Symbol for water?", "पानी का प्रतीक?", []string{"H2O", "CO2", "O2", "NaCl"}, "H2O")},
		Medium:   {q("c2", "Atomic number of Carbon?", "कार्बन का परमाणु क्रमांक?", []string{"6", "8", "12", "14"}, "6")},
		Hard:     {q("c3", "pH of neutral solution?", "तटस्थ विलयन का pH?", []string{"7", "0", "14", "1"}, "7")},
		Advanced: {q("c4", "What is the hybridization of NH3?", "NH3 का संकरण क्या है?", []string{"sp3", "sp2"}, "sp3")},
	},
	CategoryVerbal: {
		Easy:     {q("v1", "Synonym of big?", "'बड़ा' का पर्यायवाची?", []string{"Small", "Large", "Tiny", "Short"}, "Large")},
		Medium:   {q("v2", "Antonyms: Big, Small", "विलोम: बड़ा, छोटा", []string{"True", "False"}, "True")},
		Hard:     {q("v3", "Complete: The ___ is mightier than the sword.", "पूरा करें: ___ तलवार से अधिक शक्तिशाली है।", []string{"Pen", "Word", "Mind", "Heart"}, "Pen")},
		Advanced: {q("v4", "Choose the correct analogy: Doctor : Hospital :: Teacher : ?", "सही समानता चुनें: डॉक्टर : अस्पताल :: शिक्षक : ?", []string{"School", "Library"}, "School")},
	},
	CategoryAnalytical: {
		Easy:     {q("a1", "Next number: 2, 4, 6, ?", "अगली संख्या: 2, 4, 6, ?", []string{"8", "7", "9", "10"}, "8")},
		Medium:   {q("a2", "If A > B, B > C, then?", "यदि A > B, B > C, तो?", []string{"A > C", "A < C", "A = C"}, "A > C")},
		Hard:     {q("a3", "If all roses are flowers, and some flowers are red, then?", "यदि सभी गुलाब फूल हैं, और कुछ फूल लाल हैं, तो?", []string{"Some roses are red", "All roses are red"}, "Some roses are red")},
		Advanced: {q("a4", "If some A are B, and all B are C, then?", "यदि कुछ A, B हैं, और सभी B, C हैं, तो?", []string{"Some A are C", "All A are C"}, "Some A are C")},
	},
	CategoryExtra: {
		Easy:     {q("g1", "Capital of India?", "भारत की राजधानी?", []string{"Delhi", "Mumbai", "Kolkata", "Chennai"}, "Delhi")},
		Medium:   {q("g2", "First PM of India?", "भारत के पहले PM?", []string{"Nehru", "Gandhi", "Patel", "Modi"}, "Nehru")},
		Hard:     {q("g3", "Year of Independence?", "स्वतंत्रता का वर्ष?", []string{"1947", "1950", "1930", "1960"}, "1947")},
		Advanced: {q("g4", "Who is the current RBI Governor (2025)?", "2025 में RBI गवर्नर कौन है?", []string{"Shaktikanta Das", "Urjit Patel"}, "Shaktikanta Das")},
	},
	CategoryAccounting: {
		Easy:     {q("ac1", "What is a balance sheet?", "बैलेंस शीट क्या है?", []string{"Financial statement", "Tax document"}, "Financial statement")},
		Medium:   {q("ac2", "What is ROI?", "ROI क्या है?", []string{"Return on Investment", "Revenue"}, "Return on Investment")},
		Hard:     {q("ac3", "Calculate profit: Revenue=1000, Cost=700", "लाभ की गणना: राजस्व=1000, लागत=700", []string{"300", "400"}, "300")},
		Advanced: {q("ac4", "What is double-entry bookkeeping?", "डबल-एंट्री बुककीपिंग क्या है?", []string{"Records each transaction twice", "Single entry"}, "Records each transaction twice")},
	},
	CategoryCoding: {
		Easy:     {q("cd1", "What is the output of print(2+3)?", "print(2+3) का आउटपुट क्या है?", []string{"5", "6"}, "5")},
		Medium:   {q("cd2", "What is a loop in Python?", "पायथन में लूप क्या है?", []string{"Repeats code", "Function"}, "Repeats code")},
		Hard:     {q("cd3", "Find error: for i in range(5) print(i)", "त्रुटि ढूंढें: for i in range(5) print(i)", []string{"Missing colon", "No error"}, "Missing colon")},
		Advanced: {q("cd4", "What is the time complexity of merge sort?", "मर्ज सॉर्ट की समय जटिलता क्या है?", []string{"O(n log n)", "O(n^2)"}, "O(n log n)")},
	},
	CategoryActivity: {
		Easy:     {q("act1", "What is the capital city of France?", "फ्रांस की राजधानी क्या है?", []string{"Paris", "London"}, "Paris")},
		Medium:   {q("act2", "Which gas do plants absorb from the atmosphere?", "पौधे वातावरण से कौन सी गैस अवशोषित करते हैं?", []string{"Carbon Dioxide", "Oxygen"}, "Carbon Dioxide")},
		Hard:     {q("act3", "Who wrote the Indian National Anthem?", "भारतीय राष्ट्रगान किसने लिखा?", []string{"Rabindranath Tagore", "Mahatma Gandhi"}, "Rabindranath Tagore")},
		Advanced: {q("act4", "What is the chemical symbol for Gold?", "सोने का रासायनिक प्रतीक क्या है?", []string{"Au", "Ag"}, "Au")},
	},
}
