package i18n

var catalog = map[Language]map[string]string{
	English: {
		// navigation
		"nav.home":       "Home",
		"nav.listing":    "Listing",
		"nav.calculator": "Calculator",

		// modals
		"modal.close":              "Close",
		"modal.wallet.title":       "Connect a wallet",
		"modal.wallet.body":        "To have full access to the functionality you need to connect the wallet in the settings!",
		"modal.owner.title":        "Oops...",
		"modal.owner.body":         "To publish your comment on a collection, you must have NFT from it in your wallet!",
		"modal.disconnect.title":   "Disconnect wallet",
		"modal.disconnect.confirm": "Disconnect",

		// home
		"home.title": "Collections",
		"home.empty": "No collections yet",

		// collection
		"collection.regular":       "Regular payments",
		"collection.unsafe":        "Unsafe",
		"collection.verified":      "Verified",
		"collection.items":         "Items:",
		"collection.owners":        "Owners:",
		"collection.floor":         "Floor:",
		"collection.apr":           "APR",
		"collection.average_apr":   "Average APR",
		"collection.payback":       "Payback time:",
		"collection.profitability": "Profitability",
		"collection.history":       "Payment history",
		"collection.no_history":    "No payments yet",
		"collection.comments":      "Open comments",
		"collection.not_found":     "Collection not found",
		"collection.error":         "Failed to load the collection. Try again later.",
		"period.weekly":            "Weekly",
		"period.monthly":           "Monthly",
		"period.yearly":            "Yearly",
		"unit.days":                "d.",
		"unit.months":              "m.",
		"unit.years":               "y.",

		// comments
		"comments.title":       "Comments",
		"comments.empty":       "No comments yet",
		"comments.add":         "Add comment",
		"addcomment.title":     "Add comment",
		"addcomment.header":    "YOUR TEXT",
		"addcomment.hint":      "Enter your comment",
		"addcomment.like":      "Like",
		"addcomment.dislike":   "Dislike",
		"addcomment.send":      "Send comment",
		"addcomment.invalid":   "Write a comment and choose a reaction",
		"addcomment.failed":    "Failed to send the comment. Try again later.",
		"addcomment.duplicate": "This comment is already being sent",
		"form.expired":         "The form has expired. Please try again.",
		"form.duplicate":       "This form is already being sent",

		// calculator
		"calculator.title":          "Calculator",
		"calculator.days.header":    "PAYMENT PERIOD IN DAYS",
		"calculator.days.hint":      "Enter number of days",
		"calculator.days.footer":    "Enter the interval between payments in days",
		"calculator.address.header": "COLLECTION ADDRESS",
		"calculator.address.hint":   "Enter contract",
		"calculator.address.footer": "Enter the address of the collection contract",
		"calculator.income.header":  "REWARD AMOUNT",
		"calculator.income.footer":  "Enter the payout amount for 1 NFT in $TON",
		"calculator.submit":         "Calculate",
		"calculator.result":         "Calculation result",
		"calculator.not_found":      "Collection not found. Please check the address.",
		"calculator.failed":         "An error occurred while calculating APR. Try again later.",

		// listing
		"listing.title":   "Listing",
		"listing.request": "Listing request",

		// listing request
		"listingrequest.title":          "Listing Request",
		"listingrequest.link.header":    "LINK TO NFT COLLECTION",
		"listingrequest.link.hint":      "Enter link",
		"listingrequest.link.footer":    "Enter the address of the NFT contract",
		"listingrequest.collection":     "Title collection",
		"listingrequest.period.header":  "PAYMENT PERIOD IN DAYS",
		"listingrequest.period.hint":    "Enter number of days",
		"listingrequest.token.header":   "TOKEN ADDRESS",
		"listingrequest.token.hint":     "Enter contract",
		"listingrequest.token.footer":   "Enter the address of the token contract in which the rewards are planned to be paid out",
		"listingrequest.token.title":    "Title token",
		"listingrequest.token.add":      "Add another token",
		"listingrequest.token.remove":   "Remove token",
		"listingrequest.amount.header":  "TOKEN AMOUNT",
		"listingrequest.amount.hint":    "Enter amount per NFT",
		"listingrequest.reward.header":  "REWARD AMOUNT",
		"listingrequest.reward.hint":    "Enter amount",
		"listingrequest.submit":         "Apply for a listing",
		"listingrequest.sent":           "Your listing request has been sent",
		"listingrequest.failed":         "Failed to send the listing request. Try again later.",
		"listingrequest.not_found":      "NFT collection not found. Please check the address.",
		"listingrequest.invalid_number": "Payment period and reward amount must be positive numbers",

		// language
		"language.title":   "Language",
		"language.ru":      "Russian",
		"language.en":      "English",
		"language.current": "English",

		// settings
		"settings.title":   "Settings",
		"settings.wallet":  "Connected wallet",
		"settings.connect": "Connect",
		"settings.support": "Support",
		"settings.theme":   "Dark theme",

		"error.generic": "Something went wrong",
	},
	Russian: {
		"nav.home":       "Главная",
		"nav.listing":    "Листинг",
		"nav.calculator": "Калькулятор",

		"modal.close":              "Закрыть",
		"modal.wallet.title":       "Подключите кошелёк",
		"modal.wallet.body":        "Чтобы иметь полный доступ к функционалу вам нужно подключить кошелёк в настройках!",
		"modal.owner.title":        "Упс...",
		"modal.owner.body":         "Чтобы опубликовать ваш комментарий к коллекции на вашем кошельке должна быть нфт с неё!",
		"modal.disconnect.title":   "Отключить кошелёк",
		"modal.disconnect.confirm": "Отключить",

		"home.title": "Коллекции",
		"home.empty": "Коллекций пока нет",

		"collection.regular":       "Регулярные выплаты",
		"collection.unsafe":        "Небезопасно",
		"collection.verified":      "Проверено",
		"collection.items":         "Элементы:",
		"collection.owners":        "Владельцы:",
		"collection.floor":         "Минимальная цена:",
		"collection.apr":           "APR",
		"collection.average_apr":   "Средний APR",
		"collection.payback":       "Окупаемость:",
		"collection.profitability": "Прибыльность",
		"collection.history":       "История платежей",
		"collection.no_history":    "Выплат пока нет",
		"collection.comments":      "Открыть комментарии",
		"collection.not_found":     "Коллекция не найдена",
		"collection.error":         "Не удалось загрузить коллекцию. Попробуйте позже.",
		"period.weekly":            "Еженедельно",
		"period.monthly":           "Ежемесячно",
		"period.yearly":            "Ежегодно",
		"unit.days":                "д.",
		"unit.months":              "м.",
		"unit.years":               "г.",

		"comments.title":       "Комментарии",
		"comments.empty":       "Комментариев пока нет",
		"comments.add":         "Добавить комментарий",
		"addcomment.title":     "Добавить комментарий",
		"addcomment.header":    "ВАШ ТЕКСТ",
		"addcomment.hint":      "Введите ваш комментарий",
		"addcomment.like":      "Нравится",
		"addcomment.dislike":   "Не нравится",
		"addcomment.send":      "Отправить комментарий",
		"addcomment.invalid":   "Напишите комментарий и выберите реакцию",
		"addcomment.failed":    "Не удалось отправить комментарий. Попробуйте позже.",
		"addcomment.duplicate": "Этот комментарий уже отправляется",
		"form.expired":         "Форма устарела. Попробуйте ещё раз.",
		"form.duplicate":       "Эта форма уже отправляется",

		"calculator.title":          "Калькулятор",
		"calculator.days.header":    "ПЕРИОД ОПЛАТЫ В ДНЯХ",
		"calculator.days.hint":      "Введите количество дней",
		"calculator.days.footer":    "Введите интервал между выплатами в днях",
		"calculator.address.header": "АДРЕС КОЛЛЕКЦИИ",
		"calculator.address.hint":   "Введите контракт",
		"calculator.address.footer": "Введите адрес контракта NFT коллекции",
		"calculator.income.header":  "СУММА ВОЗНАГРАЖДЕНИЯ",
		"calculator.income.footer":  "Введите сумму выплат на 1 NFT в $TON",
		"calculator.submit":         "Рассчитать",
		"calculator.result":         "Результат расчёта",
		"calculator.not_found":      "Коллекция не найдена. Пожалуйста, проверьте адрес.",
		"calculator.failed":         "Произошла ошибка при расчете APR. Попробуйте позже.",

		"listing.title":   "Листинг",
		"listing.request": "Запрос на листинг",

		"listingrequest.title":          "Запрос на листинг",
		"listingrequest.link.header":    "ССЫЛКА НА КОЛЛЕКЦИЮ NFT",
		"listingrequest.link.hint":      "Введите ссылку",
		"listingrequest.link.footer":    "Введите адрес контракта NFT",
		"listingrequest.collection":     "Заголовок коллекции",
		"listingrequest.period.header":  "ПЕРИОД ОПЛАТЫ В ДНЯХ",
		"listingrequest.period.hint":    "Введите количество дней",
		"listingrequest.token.header":   "АДРЕС ТОКЕНА",
		"listingrequest.token.hint":     "Введите контракт",
		"listingrequest.token.footer":   "Введите адрес контракта токена, в котором планируется выплата вознаграждений",
		"listingrequest.token.title":    "Заголовок токена",
		"listingrequest.token.add":      "Добавить ещё токен",
		"listingrequest.token.remove":   "Удалить токен",
		"listingrequest.amount.header":  "КОЛИЧЕСТВО ТОКЕНОВ",
		"listingrequest.amount.hint":    "Введите количество на 1 NFT",
		"listingrequest.reward.header":  "СУММА ВОЗНАГРАЖДЕНИЯ",
		"listingrequest.reward.hint":    "Введите сумму",
		"listingrequest.submit":         "Подать заявку на листинг",
		"listingrequest.sent":           "Ваша заявка на листинг отправлена",
		"listingrequest.failed":         "Не удалось отправить заявку. Попробуйте позже.",
		"listingrequest.not_found":      "Коллекция NFT не найдена. Пожалуйста, проверьте адрес.",
		"listingrequest.invalid_number": "Период и сумма вознаграждения должны быть положительными числами",

		"language.title":   "Выбор языка",
		"language.ru":      "Русский",
		"language.en":      "Английский",
		"language.current": "Русский",

		"settings.title":   "Настройки",
		"settings.wallet":  "Подключенный кошелек",
		"settings.connect": "Подключить",
		"settings.support": "Поддержка",
		"settings.theme":   "Тёмная тема",

		"error.generic": "Что-то пошло не так",
	},
}
