package normalize

// greekNames are spoken Greek letters, always read.
var greekNames = map[rune]string{
	'α': "альфа", 'β': "бета", 'γ': "гамма", 'δ': "дельта",
	'ε': "эпсилон", 'ζ': "дзета", 'η': "эта", 'θ': "тета",
	'λ': "лямбда", 'μ': "мю", 'ν': "ню", 'ξ': "кси",
	'π': "пи", 'ρ': "ро", 'σ': "сигма", 'τ': "тау",
	'φ': "фи", 'χ': "хи", 'ψ': "пси", 'ω': "омега",
	'Δ': "дельта", 'Σ': "сигма", 'Ω': "омега", 'Π': "пи",
	'Λ': "лямбда", 'Θ': "тета", 'Γ': "гамма", 'Φ': "фи",
}

// mathSymbols are non-operator glyphs, always read.
var mathSymbols = map[string]string{
	"≤": "меньше или равно",
	"≥": "больше или равно",
	"≠": "не равно",
	"≈": "приблизительно равно",
	"±": "плюс-минус",
	"×": "умножить на",
	"÷": "разделить на",
	"√": "корень из",
	"∞": "бесконечность",
	"→": "стрелка",
	"←": "стрелка влево",
	"°": "градусов",
	"№": "номер",
	"§": "параграф",
	"©": "копирайт",
	"™": "торговая марка",
	"µ": "микро",
}

// operatorTable maps plain code operators and brackets to spoken
// words, longest glyph first. Read only when the readOperators option
// is on.
var operatorTable = []struct{ glyph, spoken string }{
	{"===", "строго равно"},
	{"!==", "строго не равно"},
	{"<=", "меньше или равно"},
	{">=", "больше или равно"},
	{"==", "равно"},
	{"!=", "не равно"},
	{"->", "стрелка"},
	{"=>", "стрелка"},
	{"&&", "и"},
	{"||", "или"},
	{"++", "плюс плюс"},
	{"--", "минус минус"},
	{":=", "присвоить"},
	{"+", "плюс"},
	{"=", "равно"},
	{"*", "звёздочка"},
	{"<", "меньше"},
	{">", "больше"},
	{"&", "амперсанд"},
	{"|", "вертикальная черта"},
	{"^", "карет"},
	{"~", "тильда"},
	{"#", "решётка"},
	{"@", "собака"},
	{"(", "открывающая скобка"},
	{")", "закрывающая скобка"},
	{"[", "открывающая квадратная скобка"},
	{"]", "закрывающая квадратная скобка"},
	{"{", "открывающая фигурная скобка"},
	{"}", "закрывающая фигурная скобка"},
}
