package analysis

// Fixed vocabulary for the classifier. Entries with a space are matched as
// substrings of the whole reply and count double; single words are matched
// against individual tokens.

var positiveKeywords = []string{
	"да", "ага", "хорошо", "отлично", "супер", "класс", "давайте", "давай",
	"конечно", "согласен", "согласна", "интересно", "нравится", "хочу",
	"готов", "готова", "подходит",
	"yes", "sure", "great", "good", "ok", "okay", "awesome", "perfect",
}

var negativeKeywords = []string{
	"нет", "не", "дорого", "плохо", "неинтересно", "против", "отказываюсь",
	"no", "nope", "expensive", "bad",
}

var uncertainKeywords = []string{
	"может", "возможно", "наверное", "подумаю", "подумать", "сомневаюсь",
	"не знаю", "не уверен", "не уверена", "хз",
	"maybe", "perhaps", "probably", "not sure",
}

// emotionGroups are checked in priority order; the first group with a
// substring match wins.
var emotionGroups = []struct {
	emotion  Emotion
	patterns []string
}{
	{EmotionExcited, []string{"отлично", "супер", "вау", "круто", "давайте", "скорее", "не терпится", "awesome", "amazing", "can't wait", "excited"}},
	{EmotionCurious, []string{"интересно", "расскажите", "любопытно", "а как", "а что", "curious", "tell me more"}},
	{EmotionWorried, []string{"переживаю", "боюсь", "волнует", "страшно", "опасаюсь", "worried", "afraid", "concern"}},
	{EmotionSkeptical, []string{"сомнева", "не верю", "вряд ли", "скептич", "doubt", "skeptical", "not sure"}},
	{EmotionConfident, []string{"уверен", "точно", "однозначно", "решено", "definitely", "confident"}},
}

// stopWords are excluded from the extracted keyword list.
var stopWords = map[string]struct{}{
	"это": {}, "что": {}, "как": {}, "для": {}, "или": {}, "если": {},
	"чтобы": {}, "есть": {}, "быть": {}, "очень": {}, "просто": {},
	"будет": {}, "можно": {}, "нужно": {}, "какие": {}, "когда": {},
	"this": {}, "that": {}, "with": {}, "have": {}, "what": {}, "when": {},
}

// objectionCategories are checked in order; the first substring match sets
// the objection type.
var objectionCategories = []struct {
	objection ObjectionType
	patterns  []string
}{
	{ObjectionPrice, []string{"дорог", "бюджет", "дешев", "стоимость слишком", "expensive", "over budget", "too much money"}},
	{ObjectionTime, []string{"долго", "некогда", "нет времени", "не сейчас", "позже", "потом", "no time", "not now", "later"}},
	{ObjectionComplexity, []string{"сложно", "непонятно", "запутан", "не разберусь", "difficult", "complicated", "confusing"}},
	{ObjectionNeed, []string{"не нужно", "не надо", "зачем", "необязательно", "don't need", "why would"}},
	{ObjectionCompetition, []string{"конкурент", "другая компания", "другой компании", "у других", "уже работаем с", "competitor", "another company"}},
}

// buyingSignalRules accumulate tags from substring checks.
var buyingSignalRules = []struct {
	tag      string
	patterns []string
}{
	{SignalTimingInterest, []string{"когда", "сроки", "как быстро", "when", "how soon"}},
	{SignalPriceInquiry, []string{"сколько", "стоимост", "какая цена", "прайс", "how much", "price"}},
	{SignalProcessInterest, []string{"как проходит", "как происходит", "процесс", "этап", "process", "how does it work"}},
	{SignalGuaranteeSeeking, []string{"гарант", "guarantee", "warranty"}},
	{SignalProofSeeking, []string{"пример", "портфолио", "кейс", "отзыв", "portfolio", "case stud", "review"}},
	{SignalReadiness, []string{"начн", "стартовать", "приступ", "начать", "start", "let's go"}},
}

// riskFactorRules accumulate tags from substring checks.
var riskFactorRules = []struct {
	tag      string
	patterns []string
}{
	{RiskProcrastination, []string{"потом", "позже", "не сейчас", "maybe later", "как-нибудь"}},
	{RiskIndecision, []string{"подумаю", "надо подумать", "посоветуюсь", "need to think"}},
	{RiskBudgetConcern, []string{"дорого", "бюджет", "expensive", "budget"}},
	{RiskUncertainty, []string{"не уверен", "сомнева", "not sure", "doubt"}},
	{RiskDistrust, []string{"не верю", "обман", "развод", "scam", "don't trust"}},
}

// expansionKeywords flag an appetite for more than the selected service.
var expansionKeywords = []string{
	"ещё", "еще", "также", "дополнительно", "кроме того", "а можно",
	"more", "also", "additionally",
}

// serviceSuggestionRules map reply topics to adjacent service offerings.
var serviceSuggestionRules = []struct {
	topic    string
	patterns []string
	services []string
}{
	{"ecommerce", []string{"продаж", "магазин", "товар", "sell", "shop"},
		[]string{"Интеграция оплаты", "SEO-оптимизация", "Маркетинговая стратегия"}},
	{"clients", []string{"клиент", "заявк", "crm"},
		[]string{"CRM-интеграция", "Автоматизация бизнеса"}},
	{"promotion", []string{"реклам", "продвиж", "трафик", "marketing", "ads"},
		[]string{"Маркетинговая стратегия", "SEO-оптимизация"}},
	{"automation", []string{"автоматизац", "рутин", "вручную", "automation", "manual work"},
		[]string{"Автоматизация бизнеса"}},
	{"bots", []string{"telegram", "телеграм", "бот", "рассылк"},
		[]string{"Telegram-бот"}},
}

// confidenceTable is the fixed lookup keyed by sentiment and emotion.
// Values stay within [20, 90]; unknown combinations fall back to 50.
var confidenceTable = map[Sentiment]map[Emotion]int{
	SentimentPositive: {
		EmotionExcited:     85,
		EmotionConfident:   80,
		EmotionCurious:     75,
		EmotionIndifferent: 65,
		EmotionWorried:     55,
		EmotionSkeptical:   50,
	},
	SentimentNegative: {
		EmotionIndifferent: 20,
		EmotionSkeptical:   25,
		EmotionWorried:     30,
		EmotionExcited:     35,
		EmotionCurious:     35,
	},
	SentimentUncertain: {
		EmotionSkeptical:   30,
		EmotionWorried:     35,
		EmotionIndifferent: 40,
		EmotionCurious:     45,
		EmotionConfident:   45,
	},
	SentimentNeutral: {
		EmotionExcited:   70,
		EmotionConfident: 65,
		EmotionCurious:   60,
		EmotionWorried:   45,
		EmotionSkeptical: 40,
	},
}

const defaultConfidence = 50
