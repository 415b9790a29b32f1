package filter

// Events keeps exhibitions, concerts, theater, festivals and similar listings.
// Movies pass only when the title explicitly mentions a premiere.
func Events() Rules {
	return Rules{
		Allow: []string{
			"выставка", "экспозиция", "вернисаж",
			"концерт", "фестиваль", "джаз", "рок", "оркестр", "симфонический",
			"спектакль", "театр", "перформанс", "опера", "балет",
			"ярмарка", "маркет", "экскурсия",
			"лекция", "мастер-класс", "воркшоп", "презентация",
			"stand-up", "стендап", "open mic", "опен майк",
		},
		Pairs: []Pair{
			{Left: []string{"кино", "фильм"}, Right: []string{"премьера"}},
		},
	}
}

// Agro keeps the business agenda: markets, exports, policy, prices. Lifestyle
// and gardening content is rejected outright.
func Agro() Rules {
	return Rules{
		Deny: []string{
			"рецепт", "как посадить", "огород", "дача", "садовод",
			"лайфхак", "маринад", "кулинар", "подкормк", "удобрение своими",
			"домашн", "рассада", "цветок", "комнатн",
		},
		Allow: []string{
			"рынок", "экспорт", "импорт", "квота", "господдерж", "субсид",
			"урожай", "посев", "сбор", "засуха", "погода", "прогноз", "гкт",
			"цена", "подорожан", "подешев", "индекс", "инфляц",
			"зерн", "масл", "молок", "мяс", "скот", "птиц", "сахар",
			"логист", "порт", "жд", "перевалк", "экспортная пошлина",
			"техника", "технолог", "дрон", "агротех", "инвестици", "проект",
			"мсх", "минсельхоз", "постановлен", "приказ", "ФОТ", "меры поддержки",
		},
	}
}

// SVO filters conflict news: entertainment and business noise is rejected,
// named-leader or negotiation mentions pass immediately, otherwise the title
// must hit at least two of the core/action/place groups with core-or-action
// required (a place name alone is not enough).
func SVO() Rules {
	return Rules{
		Deny: []string{
			"блогер", "шоумен", "актёр", "актрис", "певиц", "певец",
			"шоу", "концерт", "сериал", "кино", "премьера", "фильм",
			"ивент", "селеб", "звезда", "скандал",
			"бизнес", "компания", "акции", "крипт", "магазин", "мода",
		},
		Accept: []string{"путин", "переговор"},
		Groups: [][]string{
			{
				"сво", "спецоперац", "лбс", "фронт", "военн", "сводк", "минобороны",
				"всу", "зсу", "бригада", "батальон", "полк",
				"артилл", "мином", "пво", "бпла", "дрон", "шахед", "герань",
				"ракет", "танк", "бронетех", "боеприпас", "окоп", "инженерн",
				"сша", "америка", "зеленский", "путин", "переговор",
			},
			{
				"обстрел", "удар", "штурм", "рейд", "наступ", "контрнаступ",
				"прорыв", "оборона", "сбит", "подрыв", "взорван",
				"эвакуац", "переброс", "задержан", "зачистк", "высадк",
			},
			{
				"бахмут", "артёмовск", "авдеев", "купянск", "лиман", "сватово",
				"угледар", "запорож", "херсон", "донецк", "луганск",
				"кременн", "часов яр", "марьинк", "работин", "харков", "харьков",
			},
		},
		MinGroups:  2,
		CoreGroups: 2,
	}
}

// AI requires a core AI keyword plus either a signal keyword (release,
// benchmark, open source, paper) or an explicit model-name mention. A core
// keyword alone is not enough.
func AI() Rules {
	core := []string{
		"ai", "искусственный интеллект", "нейросет", "llm", "gpt", "genai",
		"модель", "foundation model", "трансформер", "r1", "mistral", "llama",
		"distillation", "fine-tuning", "inference", "rag", "agent",
	}
	signal := []string{
		"релиз", "запуск", "announc", "update", "обновлен", "weights",
		"research", "study", "paper", "benchmark", "sota",
		"open source", "opensource", "github", "репозитор", "датасет",
		// model mentions count as a signal on their own
		"model", "модель", "llm", "gpt", "mistral", "llama", "r1",
	}
	return Rules{
		Pairs: []Pair{{Left: core, Right: signal}},
	}
}
