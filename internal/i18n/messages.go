package i18n

import "github.com/smartsites-digital/leadchat/internal/leads"

var messages = map[string]map[string]string{
	LocaleRU: {
		KeyGreeting:        "Здравствуйте! Я помогу подобрать решение для вашего проекта.",
		KeySelectService:   "Какая услуга вас интересует? Выберите из списка или напишите своими словами.",
		KeyTimelineQ:       "Отлично! В какие сроки вы хотели бы запустить проект?",
		KeyBudgetQ:         "Какой бюджет вы рассматриваете?",
		KeyAskName:         "Почти готово! Как вас зовут?",
		KeyAskEmail:        "Приятно познакомиться, {name}! Оставьте, пожалуйста, email для связи.",
		KeyAskPhone:        "И последнее: номер телефона, чтобы менеджер мог с вами связаться.",
		KeyThanks:          "Спасибо, {name}! Заявка принята, менеджер свяжется с вами в течение рабочего дня.",
		KeyReadyToProceed:  "Вижу, вы настроены решительно! Давайте сразу перейдём к срокам и бюджету, чтобы менеджер подготовил предложение.",
		KeySubmitError:     "Не получилось отправить заявку. Ваши данные сохранены, попробуйте ещё раз чуть позже.",
		KeyDiscountGranted: "Гибкие сроки — это удобно для планирования, поэтому мы дадим вам скидку {percent}%.",
	},
	LocaleEN: {
		KeyGreeting:        "Hi! I'll help you find the right solution for your project.",
		KeySelectService:   "Which service are you interested in? Pick from the list or describe it in your own words.",
		KeyTimelineQ:       "Great! What timeline do you have in mind for launching the project?",
		KeyBudgetQ:         "What budget are you considering?",
		KeyAskName:         "Almost done! What's your name?",
		KeyAskEmail:        "Nice to meet you, {name}! Please leave an email so we can reach you.",
		KeyAskPhone:        "One last thing: a phone number so our manager can contact you.",
		KeyThanks:          "Thank you, {name}! Your request has been received; a manager will contact you within one business day.",
		KeyReadyToProceed:  "I can see you're ready to go! Let's jump straight to timeline and budget so the manager can prepare a proposal.",
		KeySubmitError:     "We couldn't send your request. Your details are saved, please try again in a moment.",
		KeyDiscountGranted: "A flexible timeline makes planning easier, so we'll give you a {percent}% discount.",
	},
}

var serviceQuestions = map[string]map[leads.ServiceKind][]string{
	LocaleRU: {
		leads.ServiceOnlineShop: {
			"Сколько примерно товаров будет в магазине?",
			"Есть ли особые пожелания: интеграции, доставка, программа лояльности?",
			"Какие ещё функции важны для вашего магазина?",
		},
		leads.ServiceLanding: {
			"Сколько страниц или блоков вы планируете?",
			"Какой стиль дизайна вам ближе: минимализм, яркий, корпоративный?",
			"Что ещё важно учесть в проекте?",
		},
		leads.ServiceCorporate: {
			"Сколько разделов планируется на сайте?",
			"Какой стиль дизайна отражает вашу компанию?",
			"Какие дополнительные возможности нужны?",
		},
		leads.ServiceWebApp: {
			"Какие основные функции должно выполнять приложение?",
			"Расскажите подробнее о задаче, которую решает приложение.",
			"Какие ещё возможности стоит предусмотреть?",
		},
		leads.ServiceCRM: {
			"Какие процессы вы хотите автоматизировать через CRM?",
			"С какими системами нужна интеграция?",
			"Что ещё важно учесть?",
		},
		leads.ServiceSEO: {
			"Какой у вас сейчас сайт? Поделитесь ссылкой, если есть.",
			"По каким запросам вы хотели бы находиться в топе?",
			"Какие регионы вам интересны?",
		},
		leads.ServiceMarketing: {
			"Расскажите о вашем продукте и целевой аудитории.",
			"Какие каналы продвижения вы уже пробовали?",
			"Какого результата хотите достичь?",
		},
		leads.ServicePayment: {
			"Какие платёжные системы нужно подключить?",
			"На какой платформе работает ваш сайт?",
			"Что ещё важно учесть при подключении?",
		},
		leads.ServiceAutomation: {
			"Какие рутинные процессы отнимают больше всего времени?",
			"Какими инструментами вы пользуетесь сейчас?",
			"Что ещё хотелось бы автоматизировать?",
		},
		leads.ServiceTelegramBot: {
			"Какие задачи должен решать бот?",
			"Опишите сценарий общения бота с клиентом.",
			"Какие ещё функции пригодятся?",
		},
		leads.ServiceRedesign: {
			"Какой сайт нужно обновить? Поделитесь ссылкой.",
			"Какой стиль вы хотите получить в итоге?",
			"Что в текущем сайте вас не устраивает больше всего?",
		},
	},
	LocaleEN: {
		leads.ServiceOnlineShop: {
			"Roughly how many products will the shop carry?",
			"Any special requirements: integrations, delivery, loyalty program?",
			"What other features matter for your shop?",
		},
		leads.ServiceLanding: {
			"How many pages or sections are you planning?",
			"Which design style suits you: minimalist, bold, corporate?",
			"Anything else we should take into account?",
		},
		leads.ServiceCorporate: {
			"How many sections will the website have?",
			"Which design style reflects your company?",
			"What extra capabilities do you need?",
		},
		leads.ServiceWebApp: {
			"What are the core functions the app must perform?",
			"Tell us more about the problem the app solves.",
			"What other capabilities should we plan for?",
		},
		leads.ServiceCRM: {
			"Which processes do you want to automate through the CRM?",
			"Which systems does it need to integrate with?",
			"Anything else we should consider?",
		},
		leads.ServiceSEO: {
			"What website do you have now? Share a link if possible.",
			"Which search queries would you like to rank for?",
			"Which regions are you targeting?",
		},
		leads.ServiceMarketing: {
			"Tell us about your product and target audience.",
			"Which promotion channels have you already tried?",
			"What result are you aiming for?",
		},
		leads.ServicePayment: {
			"Which payment systems need to be connected?",
			"What platform does your website run on?",
			"Anything else to take into account?",
		},
		leads.ServiceAutomation: {
			"Which routine processes take up most of your time?",
			"What tools are you using today?",
			"What else would you like to automate?",
		},
		leads.ServiceTelegramBot: {
			"What tasks should the bot handle?",
			"Describe how the bot should talk to a customer.",
			"What other features would be useful?",
		},
		leads.ServiceRedesign: {
			"Which website needs a refresh? Share a link.",
			"What style do you want to end up with?",
			"What bothers you most about the current site?",
		},
	},
}

var defaultQuestions = map[string][]string{
	LocaleRU: {
		"Расскажите подробнее о вашей задаче.",
		"Какие детали нам стоит учесть?",
	},
	LocaleEN: {
		"Tell us more about your task.",
		"What details should we keep in mind?",
	},
}

var timelineOptions = map[string][]Option{
	LocaleRU: {
		{Value: "asap", Label: "Как можно скорее"},
		{Value: "1_month", Label: "В течение месяца"},
		{Value: "3_months", Label: "В течение 2-3 месяцев"},
		{Value: "flexible", Label: "Сроки гибкие"},
	},
	LocaleEN: {
		{Value: "asap", Label: "As soon as possible"},
		{Value: "1_month", Label: "Within a month"},
		{Value: "3_months", Label: "Within 2-3 months"},
		{Value: "flexible", Label: "Flexible"},
	},
}

var budgetOptions = map[string][]Option{
	LocaleRU: {
		{Value: "under_50k", Label: "До 50 000 ₽"},
		{Value: "50_150k", Label: "50 000 – 150 000 ₽"},
		{Value: "150_500k", Label: "150 000 – 500 000 ₽"},
		{Value: "over_500k", Label: "Более 500 000 ₽"},
	},
	LocaleEN: {
		{Value: "under_50k", Label: "Up to $1,000"},
		{Value: "50_150k", Label: "$1,000 – $3,000"},
		{Value: "150_500k", Label: "$3,000 – $10,000"},
		{Value: "over_500k", Label: "Over $10,000"},
	},
}
