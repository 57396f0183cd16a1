package normalize

// termTable holds English words and IT jargon with established Russian
// pronunciations. Checked before acronym spelling and before the
// phonetic fallback; keys are lowercase.
var termTable = map[string]string{
	"backend":    "бэкенд",
	"bench":      "бенч",
	"branch":     "бранч",
	"bug":        "баг",
	"build":      "билд",
	"cache":      "кэш",
	"client":     "клиент",
	"cloud":      "клауд",
	"code":       "код",
	"commit":     "коммит",
	"config":     "конфиг",
	"cookie":     "куки",
	"deploy":     "деплой",
	"docker":     "докер",
	"email":      "имейл",
	"feature":    "фича",
	"file":       "файл",
	"framework":  "фреймворк",
	"frontend":   "фронтенд",
	"get":        "гет",
	"git":        "гит",
	"github":     "гитхаб",
	"gitlab":     "гитлаб",
	"go":         "гоу",
	"golang":     "голанг",
	"google":     "гугл",
	"hello":      "хелло",
	"index":      "индекс",
	"internet":   "интернет",
	"java":       "джава",
	"javascript": "джаваскрипт",
	"json":       "джейсон",
	"kubernetes": "кубернетес",
	"linux":      "линукс",
	"localhost":  "локалхост",
	"log":        "лог",
	"merge":      "мёрдж",
	"nvidia":     "энвидиа",
	"offline":    "офлайн",
	"online":     "онлайн",
	"port":       "порт",
	"post":       "пост",
	"python":     "пайтон",
	"release":    "релиз",
	"request":    "реквест",
	"review":     "ревью",
	"rust":       "раст",
	"script":     "скрипт",
	"server":     "сервер",
	"set":        "сет",
	"terminal":   "терминал",
	"test":       "тест",
	"token":      "токен",
	"typescript": "тайпскрипт",
	"update":     "апдейт",
	"user":       "юзер",
	"value":      "вэлью",
	"windows":    "виндоус",
	"world":      "ворлд",
	"yaml":       "ямл",
}

// phraseTable holds multi-word English phrases checked before single
// terms, longest first.
var phraseTable = []struct{ phrase, spoken string }{
	{"visual studio code", "вижуал студио код"},
	{"machine learning", "машин лёрнинг"},
	{"visual studio", "вижуал студио"},
	{"code review", "код ревью"},
	{"data science", "дата сайенс"},
	{"open source", "оупен сорс"},
	{"pull request", "пул реквест"},
	{"unit test", "юнит тест"},
}

// letterNames spell English letters for acronyms: "API" → "эй-пи-ай".
var letterNames = map[rune]string{
	'a': "эй", 'b': "би", 'c': "си", 'd': "ди", 'e': "и",
	'f': "эф", 'g': "джи", 'h': "эйч", 'i': "ай", 'j': "джей",
	'k': "кей", 'l': "эл", 'm': "эм", 'n': "эн", 'o': "оу",
	'p': "пи", 'q': "кью", 'r': "ар", 's': "эс", 't': "ти",
	'u': "ю", 'v': "ви", 'w': "дабл-ю", 'x': "икс", 'y': "уай",
	'z': "зед",
}

// tldNames are spoken top-level domains.
var tldNames = map[string]string{
	"com": "ком",
	"org": "орг",
	"net": "нет",
	"ru":  "ру",
	"io":  "ай-оу",
	"dev": "дев",
	"ai":  "эй-ай",
	"co":  "ко",
	"edu": "эду",
	"gov": "гов",
	"me":  "ми",
}

// protocolNames are spoken URL schemes.
var protocolNames = map[string]string{
	"http":  "эйч-ти-ти-пи",
	"https": "эйч-ти-ти-пи-эс",
	"ftp":   "эф-ти-пи",
	"ssh":   "эс-эс-эйч",
	"file":  "файл",
}

// languageNames are spoken names for fenced code block info strings,
// used by the brief description mode.
var languageNames = map[string]string{
	"go":         "гоу",
	"golang":     "гоу",
	"python":     "пайтон",
	"py":         "пайтон",
	"js":         "джаваскрипт",
	"javascript": "джаваскрипт",
	"ts":         "тайпскрипт",
	"typescript": "тайпскрипт",
	"rust":       "раст",
	"c":          "си",
	"cpp":        "си-плюс-плюс",
	"java":       "джава",
	"sh":         "шелл",
	"bash":       "баш",
	"shell":      "шелл",
	"sql":        "эс-кью-эл",
	"json":       "джейсон",
	"yaml":       "ямл",
	"yml":        "ямл",
	"html":       "эйч-ти-эм-эл",
	"css":        "си-эс-эс",
}
