package persuasion

import "github.com/smartsites-digital/leadchat/internal/analysis"

func buildTemplate(locale string, kind templateKind) *Strategy {
	if locale == "en" {
		return englishTemplates[kind]()
	}
	return russianTemplates[kind]()
}

// Each builder returns a fresh value so callers may mutate the result.
var russianTemplates = map[templateKind]func() *Strategy{
	templatePrice: func() *Strategy {
		return &Strategy{
			Message:    "Понимаю, цена — важный вопрос. Давайте посмотрим на это как на инвестицию.",
			Statistics: "Наши клиенты в среднем окупают сайт за 3-4 месяца за счёт новых заявок.",
			Benefits: []string{
				"Работаем поэтапно: платите частями по мере готовности",
				"Фиксируем стоимость в договоре, без скрытых доплат",
				"Первый месяц поддержки после запуска бесплатно",
			},
			Anchoring:    "Сопоставимые проекты у агентств стоят в 2-3 раза дороже при том же объёме работ.",
			RiskReversal: "Если результат первого этапа вас не устроит, вернём предоплату полностью.",
		}
	},
	templateNeed: func() *Strategy {
		return &Strategy{
			Message:     "Хороший вопрос. Сайт нужен не всем, поэтому давайте разберёмся именно с вашей ситуацией.",
			Statistics:  "78% клиентов сначала ищут компанию в интернете и выбирают тех, у кого есть понятный сайт.",
			SocialProof: "Недавно мы запустили сайт для компании, которая тоже сомневалась, — через два месяца заявки выросли на 40%.",
			Reciprocity: "Могу бесплатно подготовить для вас короткий разбор: что сайт даст именно вашему бизнесу.",
		}
	},
	templateComplexity: func() *Strategy {
		return &Strategy{
			Message: "Ничего сложного с вашей стороны не потребуется — всю техническую часть мы берём на себя.",
			Benefits: []string{
				"Вы отвечаете на простые вопросы, остальное делаем мы",
				"Персональный менеджер на связи на каждом этапе",
				"Обучим работе с сайтом за одну короткую встречу",
			},
			EmotionalAppeal: "Большинство наших клиентов — не технические специалисты, и у всех всё получилось.",
		}
	},
	templateDontKnow: func() *Strategy {
		return &Strategy{
			Message:     "Это нормально — не знать деталей заранее. Для этого и нужен наш разговор.",
			Reciprocity: "Предложу пару готовых вариантов, а вы просто скажете, что ближе.",
			SocialProof: "Половина наших клиентов приходила без чёткого ТЗ — мы помогали сформулировать задачу вместе.",
		}
	},
	templateTime: func() *Strategy {
		return &Strategy{
			Message:    "Понимаю, времени всегда не хватает. Поэтому мы построили процесс так, чтобы он почти не требовал вашего участия.",
			Statistics: "В среднем от клиента нужно 2-3 часа на весь проект: ответы на вопросы и согласование макета.",
			Urgency:    "Чем раньше стартуем, тем раньше сайт начнёт приводить клиентов — каждый месяц ожидания это упущенные заявки.",
		}
	},
	templateCompetition: func() *Strategy {
		return &Strategy{
			Message: "Здорово, что вы уже сравниваете варианты — значит, решение почти принято.",
			Benefits: []string{
				"Покажем портфолио похожих проектов до начала работ",
				"Прозрачная смета: видно, за что вы платите",
				"Не пропадаем после запуска: поддержка и развитие сайта",
			},
			RiskReversal: "Предлагаю просто сравнить наше предложение с другими — это ни к чему не обязывает.",
		}
	},
	templateGeneric: func() *Strategy {
		return &Strategy{
			Message:     "Кажется, у вас остались сомнения — это нормально, давайте их обсудим.",
			SocialProof: "За последний год мы запустили более 50 проектов, средняя оценка клиентов 4.9 из 5.",
			Reciprocity: "Могу подготовить бесплатную консультацию по вашей задаче, без обязательств.",
		}
	},
}

var englishTemplates = map[templateKind]func() *Strategy{
	templatePrice: func() *Strategy {
		return &Strategy{
			Message:    "I hear you, price matters. Let's look at it as an investment instead of a cost.",
			Statistics: "On average our clients recover the cost of the website within 3-4 months through new inquiries.",
			Benefits: []string{
				"Staged payments tied to delivered milestones",
				"The price is fixed in the contract, no hidden extras",
				"First month of post-launch support is free",
			},
			Anchoring:    "Comparable agency projects cost 2-3 times more for the same scope.",
			RiskReversal: "If the first milestone doesn't meet your expectations, we refund the deposit in full.",
		}
	},
	templateNeed: func() *Strategy {
		return &Strategy{
			Message:     "Fair question. Not every business needs a website, so let's look at your specific case.",
			Statistics:  "78% of customers research a company online first and pick the one with a clear website.",
			SocialProof: "We recently launched a site for a client with the same doubts; their inquiries grew 40% in two months.",
			Reciprocity: "I can prepare a free short breakdown of what a website would do for your business specifically.",
		}
	},
	templateComplexity: func() *Strategy {
		return &Strategy{
			Message: "Nothing complicated is required on your side, we handle the entire technical part.",
			Benefits: []string{
				"You answer simple questions, we do the rest",
				"A dedicated manager stays in touch at every stage",
				"We teach you to manage the site in one short session",
			},
			EmotionalAppeal: "Most of our clients are not technical people, and every one of them managed just fine.",
		}
	},
	templateDontKnow: func() *Strategy {
		return &Strategy{
			Message:     "It's perfectly fine not to know the details upfront, that's what this conversation is for.",
			Reciprocity: "I'll suggest a couple of ready-made options and you just pick what feels closer.",
			SocialProof: "Half of our clients came without a clear brief; we shaped the task together.",
		}
	},
	templateTime: func() *Strategy {
		return &Strategy{
			Message:    "I understand, time is always short. That's why our process needs almost none of yours.",
			Statistics: "On average a client spends 2-3 hours on the whole project: answering questions and approving the design.",
			Urgency:    "The sooner we start, the sooner the site brings in clients; every month of waiting is lost inquiries.",
		}
	},
	templateCompetition: func() *Strategy {
		return &Strategy{
			Message: "Great that you're already comparing options, it means the decision is nearly made.",
			Benefits: []string{
				"We show a portfolio of similar projects before any commitment",
				"A transparent estimate: you see what you pay for",
				"We don't disappear after launch: support and ongoing development",
			},
			RiskReversal: "Just compare our proposal with the others, it doesn't commit you to anything.",
		}
	},
	templateGeneric: func() *Strategy {
		return &Strategy{
			Message:     "It sounds like you still have some doubts, which is normal. Let's talk them through.",
			SocialProof: "Over the past year we launched more than 50 projects with an average client rating of 4.9 out of 5.",
			Reciprocity: "I can prepare a free consultation on your task, no strings attached.",
		}
	},
}

var closingByObjection = map[string]map[analysis.ObjectionType]string{
	"ru": {
		analysis.ObjectionPrice:       "Какой бюджет был бы для вас комфортным?",
		analysis.ObjectionTime:        "Если мы возьмём организацию на себя, когда вам было бы удобно начать?",
		analysis.ObjectionComplexity:  "Что именно кажется самым сложным? Разберём по шагам.",
		analysis.ObjectionNeed:        "Какую задачу бизнеса вы хотели бы решить в первую очередь?",
		analysis.ObjectionCompetition: "Что для вас важнее всего при выборе подрядчика?",
	},
	"en": {
		analysis.ObjectionPrice:       "What budget would feel comfortable for you?",
		analysis.ObjectionTime:        "If we handle the organization, when would be a good time to start?",
		analysis.ObjectionComplexity:  "What part feels most complicated? Let's break it down.",
		analysis.ObjectionNeed:        "Which business problem would you want to solve first?",
		analysis.ObjectionCompetition: "What matters most to you when choosing a contractor?",
	},
}

var closingByEmotion = map[string]map[analysis.Emotion]string{
	"ru": {
		analysis.EmotionWorried:   "Что вас беспокоит больше всего? Обсудим именно это.",
		analysis.EmotionSkeptical: "Какие доказательства помогли бы вам принять решение?",
		analysis.EmotionCurious:   "О чём рассказать подробнее?",
	},
	"en": {
		analysis.EmotionWorried:   "What worries you the most? Let's address exactly that.",
		analysis.EmotionSkeptical: "What proof would help you decide?",
		analysis.EmotionCurious:   "What would you like to hear more about?",
	},
}

var closingDefault = map[string]string{
	"ru": "Продолжим? Ответьте на вопрос, и мы двинемся дальше.",
	"en": "Shall we continue? Answer the question and we'll move on.",
}
