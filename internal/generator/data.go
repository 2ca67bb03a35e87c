package generator

// localeData holds every per-country pool the generator draws from.
type localeData struct {
	Name        string
	PhonePrefix string

	Cities         []string
	Streets        []string
	StreetSuffixes []string // US only
	States         []string // US only

	FirstNamesMale   []string
	FirstNamesFemale []string
	LastNamesMale    []string
	LastNamesFemale  []string

	EmailDomains    []string
	Occupations     []string
	EducationLevels []string
	Universities    []string
	Languages       []string
	Hobbies         []string
	MaritalStatuses []string

	PhoneOperators []string // RU mobile operator codes
	PhoneAreaCodes []string // US area codes
}

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var socialPlatforms = []string{"Instagram", "Facebook", "Twitter", "LinkedIn", "TikTok"}

var locales = map[string]localeData{
	"RU": {
		Name:        "Россия",
		PhonePrefix: "+7",
		Cities: []string{
			"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург",
			"Казань", "Нижний Новгород", "Челябинск", "Самара", "Омск",
			"Ростов-на-Дону", "Уфа", "Красноярск", "Воронеж", "Пермь",
			"Волгоград", "Краснодар", "Саратов", "Тюмень", "Тольятти",
			"Ижевск", "Барнаул", "Иркутск", "Ульяновск", "Хабаровск",
			"Ярославль", "Владивосток", "Махачкала", "Томск", "Оренбург",
		},
		Streets: []string{
			"Ленина", "Пушкина", "Гагарина", "Мира", "Советская",
			"Центральная", "Молодежная", "Школьная", "Лесная", "Садовая",
			"Парковая", "Зеленая", "Комсомольская", "Первомайская",
			"Набережная", "Московская", "Октябрьская", "Северная",
			"Южная", "Восточная", "Западная", "Солнечная", "Цветочная",
			"Заводская", "Новая", "Полевая", "Луговая", "Речная",
		},
		FirstNamesMale: []string{
			"Александр", "Дмитрий", "Максим", "Сергей", "Андрей", "Алексей", "Артём",
			"Илья", "Кирилл", "Михаил", "Никита", "Матвей", "Роман", "Егор", "Арсений",
			"Иван", "Денис", "Евгений", "Даниил", "Тимофей",
		},
		FirstNamesFemale: []string{
			"Анна", "Мария", "Елена", "Дарья", "София", "Алиса", "Виктория",
			"Полина", "Екатерина", "Ксения", "Александра", "Варвара", "Анастасия",
			"Вероника", "Алина", "Ирина", "Марина", "Светлана", "Юлия", "Татьяна",
		},
		LastNamesMale: []string{
			"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров",
			"Соколов", "Михайлов", "Новиков", "Федоров", "Морозов", "Волков",
			"Алексеев", "Лебедев", "Семенов", "Егоров", "Павлов", "Козлов",
		},
		LastNamesFemale: []string{
			"Иванова", "Смирнова", "Кузнецова", "Попова", "Васильева", "Петрова",
			"Соколова", "Михайлова", "Новикова", "Федорова", "Морозова", "Волкова",
			"Алексеева", "Лебедева", "Семенова", "Егорова", "Павлова", "Козлова",
		},
		EmailDomains: []string{
			"mail.ru", "yandex.ru", "rambler.ru", "gmail.com", "yahoo.com",
			"outlook.com", "hotmail.com", "list.ru", "bk.ru", "inbox.ru",
			"internet.ru", "yahoo.ru", "yandex.com", "mail.com",
		},
		Occupations: []string{
			"Программист", "Врач", "Учитель", "Инженер", "Дизайнер", "Менеджер", "Бухгалтер",
			"Юрист", "Архитектор", "Маркетолог", "Психолог", "Журналист", "Фотограф",
			"Системный администратор", "Аналитик данных", "Финансовый консультант",
			"Переводчик", "Копирайтер", "HR-специалист", "Продакт-менеджер", "Тестировщик",
			"Научный сотрудник", "Преподаватель", "Фармацевт", "Стоматолог", "Ветеринар",
			"Риэлтор", "Логист", "SMM-специалист", "Бизнес-аналитик",
		},
		EducationLevels: []string{
			"Среднее образование", "Среднее специальное образование", "Бакалавр",
			"Магистр", "Кандидат наук", "Доктор наук", "Профессиональная переподготовка",
			"MBA", "Специалист", "Незаконченное высшее", "Аспирантура",
		},
		Universities: []string{
			"МГУ", "СПбГУ", "МФТИ", "МГТУ им. Баумана", "НГУ",
			"ВШЭ", "ИТМО", "РАНХиГС", "РУДН", "УрФУ",
		},
		Languages: []string{
			"Русский", "Английский", "Немецкий", "Французский", "Испанский", "Китайский",
			"Японский", "Итальянский", "Португальский", "Корейский", "Арабский",
			"Турецкий", "Польский", "Чешский", "Шведский", "Финский", "Норвежский",
			"Греческий", "Иврит", "Хинди",
		},
		Hobbies: []string{
			"Чтение", "Путешествия", "Фотография", "Спорт", "Музыка", "Кулинария",
			"Рисование", "Йога", "Танцы", "Садоводство", "Программирование", "Шахматы",
			"Рыбалка", "Охота", "Велоспорт", "Бег", "Плавание", "Скалолазание",
			"Настольные игры", "Коллекционирование", "Рукоделие", "Медитация",
			"Волонтерство", "Блоггинг", "Фитнес", "Походы", "Серфинг", "Сноуборд",
			"Гитара", "Фортепиано", "Вокал", "Театр", "Кино", "Аниме", "Косплей",
		},
		MaritalStatuses: []string{"Не женат/Не замужем", "Женат/Замужем", "Разведен(а)", "Вдовец/Вдова"},
		PhoneOperators: []string{
			"900", "901", "902", "903", "904", "905", "906", "908", "909",
			"910", "911", "912", "913", "914", "915", "916", "917", "918",
			"919", "920", "921", "922", "923", "924", "925", "926", "927",
			"928", "929", "930", "931", "932", "933", "934", "935", "936",
			"937", "938", "939", "950", "951", "952", "953", "954", "955",
			"956", "957", "958", "959", "960", "961", "962", "963", "964",
			"965", "966", "967", "968", "969", "980", "981", "982", "983",
			"984", "985", "986", "987", "988", "989", "999",
		},
	},
	"US": {
		Name:        "United States",
		PhonePrefix: "+1",
		Cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
			"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
			"Austin", "Jacksonville", "Fort Worth", "Columbus", "San Francisco",
			"Charlotte", "Indianapolis", "Seattle", "Denver", "Washington",
			"Boston", "El Paso", "Detroit", "Nashville", "Portland",
			"Memphis", "Oklahoma City", "Las Vegas", "Louisville", "Baltimore",
		},
		Streets: []string{
			"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington",
			"Lake", "Hill", "Park", "River", "Valley", "Forest", "Garden",
			"Meadow", "Ridge", "Spring", "Highland", "Union", "Church",
			"Mill", "Sunset", "Railroad", "Market", "Water", "Bridge",
			"Pearl", "Central", "Grove", "Franklin",
		},
		StreetSuffixes: []string{
			"Street", "Avenue", "Road", "Drive", "Boulevard", "Lane",
			"Way", "Circle", "Court", "Place", "Trail", "Parkway",
			"Plaza", "Square", "Terrace", "Path", "Highway", "Run",
			"Loop", "Alley",
		},
		States: []string{
			"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
			"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
			"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
			"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
			"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
		},
		FirstNamesMale: []string{
			"James", "John", "Robert", "Michael", "William", "David", "Richard",
			"Joseph", "Thomas", "Charles", "Christopher", "Daniel", "Matthew",
			"Anthony", "Donald", "Mark", "Paul", "Steven", "Andrew", "Kenneth",
		},
		FirstNamesFemale: []string{
			"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
			"Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret",
			"Sandra", "Ashley", "Kimberly", "Emily", "Donna", "Michelle",
		},
		LastNamesMale: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
			"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
			"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		},
		LastNamesFemale: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
			"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
			"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		},
		EmailDomains: []string{
			"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
			"icloud.com", "protonmail.com", "zoho.com", "mail.com", "live.com",
			"msn.com", "comcast.net", "verizon.net", "att.net",
		},
		Occupations: []string{
			"Software Engineer", "Doctor", "Teacher", "Engineer", "Designer", "Manager",
			"Accountant", "Lawyer", "Architect", "Marketing Specialist", "Data Scientist",
			"Product Manager", "UX Designer", "Business Analyst", "Financial Advisor",
			"Sales Representative", "HR Manager", "System Administrator", "DevOps Engineer",
			"Content Writer", "Digital Marketing Manager", "Research Scientist", "Professor",
			"Pharmacist", "Dentist", "Veterinarian", "Real Estate Agent", "Logistics Manager",
			"Social Media Manager", "Business Consultant",
		},
		EducationLevels: []string{
			"High School Diploma", "Associate's Degree", "Bachelor's Degree",
			"Master's Degree", "Ph.D.", "Professional Degree", "Vocational Training",
			"MBA", "Post-Graduate Certificate", "Some College", "Doctoral Candidate",
		},
		Universities: []string{
			"Harvard University", "MIT", "Stanford University", "Yale University",
			"Columbia University", "Princeton University", "UC Berkeley",
			"University of Chicago", "CalTech", "UCLA",
		},
		Languages: []string{
			"English", "Spanish", "French", "German", "Chinese", "Japanese",
			"Italian", "Portuguese", "Korean", "Arabic", "Russian", "Turkish",
			"Polish", "Czech", "Swedish", "Finnish", "Norwegian", "Greek",
			"Hebrew", "Hindi",
		},
		Hobbies: []string{
			"Reading", "Traveling", "Photography", "Sports", "Music", "Cooking",
			"Painting", "Yoga", "Dancing", "Gardening", "Coding", "Chess",
			"Fishing", "Hunting", "Cycling", "Running", "Swimming", "Rock Climbing",
			"Board Games", "Collecting", "Crafting", "Meditation",
			"Volunteering", "Blogging", "Fitness", "Hiking", "Surfing", "Snowboarding",
			"Guitar", "Piano", "Singing", "Theater", "Movies", "Anime", "Cosplay",
		},
		MaritalStatuses: []string{"Single", "Married", "Divorced", "Widowed"},
		PhoneAreaCodes: []string{
			"201", "202", "203", "205", "206", "207", "208", "209", "210",
			"212", "213", "214", "215", "216", "217", "218", "219", "220",
			"223", "224", "225", "227", "228", "229", "231", "234", "239",
			"240", "248", "251", "252", "253", "254", "256", "260", "262",
			"267", "269", "270", "272", "276", "281", "283", "301", "302",
			"303", "304", "305", "307", "308", "309", "310", "312", "313",
			"314", "315", "316", "317", "318", "319", "320", "321", "323",
			"325", "327", "330", "331", "334", "336", "337", "339", "346",
			"347", "351", "352", "360", "361", "364", "380", "385", "386",
			"401", "402", "404", "405", "406", "407", "408", "409", "410",
			"412", "413", "414", "415", "417", "419", "423", "424", "425",
			"430", "432", "434", "435", "440", "442", "443", "447", "458",
			"463", "469", "470", "475", "478", "479", "480", "484", "501",
			"502", "503", "504", "505", "507", "508", "509", "510", "512",
			"513", "515", "516", "517", "518", "520", "530", "531", "534",
			"539", "540", "541", "551", "559", "561", "562", "563", "564",
			"567", "570", "571", "573", "574", "575", "580", "585", "586",
			"601", "602", "603", "605", "606", "607", "608", "609", "610",
			"612", "614", "615", "616", "617", "618", "619", "620", "623",
			"626", "628", "629", "630", "631", "636", "641", "646", "650",
			"651", "657", "660", "661", "662", "667", "669", "678", "681",
			"682", "701", "702", "703", "704", "706", "707", "708", "712",
			"713", "714", "715", "716", "717", "718", "719", "720", "724",
			"725", "727", "730", "731", "732", "734", "737", "740", "743",
			"747", "754", "757", "760", "762", "763", "765", "769", "770",
			"772", "773", "774", "775", "779", "781", "785", "786", "801",
			"802", "803", "804", "805", "806", "808", "810", "812", "813",
			"814", "815", "816", "817", "818", "828", "830", "831", "832",
			"843", "845", "847", "848", "850", "854", "856", "857", "858",
			"859", "860", "862", "863", "864", "865", "870", "872", "878",
			"901", "903", "904", "906", "907", "908", "909", "910", "912",
			"913", "914", "915", "916", "917", "918", "919", "920", "925",
			"928", "929", "930", "931", "934", "936", "937", "938", "940",
			"941", "947", "949", "951", "952", "954", "956", "959", "970",
			"971", "972", "973", "975", "978", "979", "980", "984", "985",
			"989",
		},
	},
	"GB": {
		Name:        "United Kingdom",
		PhonePrefix: "+44",
		Cities: []string{
			"London", "Birmingham", "Leeds", "Glasgow", "Sheffield",
			"Manchester", "Edinburgh", "Liverpool", "Bristol", "Cardiff",
			"Belfast", "Newcastle", "Nottingham", "Southampton", "Portsmouth",
			"Aberdeen", "Brighton", "Cambridge", "Oxford", "York",
			"Leicester", "Coventry", "Hull", "Bradford", "Stoke-on-Trent",
			"Plymouth", "Derby", "Swansea", "Sunderland", "Reading",
		},
		Streets: []string{
			"High", "Station", "Main", "Church", "Park", "Victoria",
			"Green", "Manor", "Kings", "Queens", "Albert", "London",
			"York", "George", "Market", "North", "South", "East",
			"West", "Bridge", "Castle", "Mill", "Grove", "New",
			"Old", "School", "Richmond", "Windsor", "Bath", "Oxford",
		},
		FirstNamesMale: []string{
			"Oliver", "Jack", "Harry", "George", "Noah", "Charlie", "Jacob",
			"Oscar", "Muhammad", "William", "Leo", "Henry", "Thomas", "Ethan",
			"Alexander", "Daniel", "Arthur", "James", "Frederick", "Edward",
		},
		FirstNamesFemale: []string{
			"Olivia", "Emma", "Ava", "Isabella", "Sophia", "Charlotte", "Mia",
			"Amelia", "Harper", "Evelyn", "Abigail", "Emily", "Elizabeth",
			"Sofia", "Ella", "Madison", "Scarlett", "Victoria", "Grace", "Chloe",
		},
		LastNamesMale: []string{
			"Smith", "Jones", "Williams", "Taylor", "Brown", "Davies", "Evans",
			"Wilson", "Thomas", "Johnson", "Roberts", "Walker", "Wright", "Robinson",
			"Thompson", "White", "Hughes", "Edwards", "Green", "Hall",
		},
		LastNamesFemale: []string{
			"Smith", "Jones", "Williams", "Taylor", "Brown", "Davies", "Evans",
			"Wilson", "Thomas", "Johnson", "Roberts", "Walker", "Wright", "Robinson",
			"Thompson", "White", "Hughes", "Edwards", "Green", "Hall",
		},
		EmailDomains: []string{
			"gmail.com", "yahoo.co.uk", "hotmail.co.uk", "outlook.com",
			"googlemail.com", "btinternet.com", "mail.com", "protonmail.com",
			"icloud.com", "live.co.uk", "sky.com", "aol.co.uk", "virgin.net",
		},
		Occupations: []string{
			"Software Developer", "Physician", "Teacher", "Engineer", "Designer", "Manager",
			"Accountant", "Solicitor", "Architect", "Marketing Manager", "Data Analyst",
			"Project Manager", "UI Designer", "Systems Analyst", "Investment Advisor",
			"Sales Executive", "HR Consultant", "IT Support", "Cloud Engineer",
			"Technical Writer", "Digital Strategist", "Research Fellow", "Lecturer",
			"Clinical Pharmacist", "Dental Surgeon", "Veterinary Surgeon", "Estate Agent",
			"Supply Chain Manager", "Digital Marketing Executive", "Management Consultant",
		},
		EducationLevels: []string{
			"GCSE", "A-Levels", "Bachelor's Degree", "Master's Degree", "Ph.D.",
			"Professional Qualification", "HND", "Foundation Degree", "BTEC",
			"Higher Apprenticeship", "Postgraduate Diploma",
		},
		Universities: []string{
			"University of Oxford", "University of Cambridge", "Imperial College London",
			"UCL", "University of Edinburgh", "King's College London",
			"University of Manchester", "LSE", "University of Bristol",
			"University of Warwick",
		},
		Languages: []string{
			"English", "French", "German", "Spanish", "Italian", "Arabic",
			"Chinese", "Japanese", "Portuguese", "Russian", "Polish", "Turkish",
			"Hindi", "Bengali", "Urdu", "Punjabi", "Welsh", "Gaelic",
			"Greek", "Dutch",
		},
		Hobbies: []string{
			"Reading", "Travelling", "Photography", "Sports", "Music", "Cooking",
			"Painting", "Yoga", "Dancing", "Gardening", "Cricket", "Football",
			"Rugby", "Tennis", "Golf", "Running", "Swimming", "Climbing",
			"Board Games", "Collecting", "Crafting", "Meditation",
			"Volunteering", "Blogging", "Fitness", "Hiking", "Surfing", "Cycling",
			"Guitar", "Piano", "Singing", "Theatre", "Cinema", "Gaming", "DIY",
		},
		MaritalStatuses: []string{"Single", "Married", "Divorced", "Widowed"},
	},
	"DE": {
		Name:        "Deutschland",
		PhonePrefix: "+49",
		Cities: []string{
			"Berlin", "Hamburg", "München", "Köln", "Frankfurt",
			"Stuttgart", "Düsseldorf", "Leipzig", "Dortmund", "Essen",
			"Bremen", "Dresden", "Hannover", "Nürnberg", "Duisburg",
			"Bochum", "Wuppertal", "Bielefeld", "Bonn", "Münster",
			"Karlsruhe", "Mannheim", "Augsburg", "Wiesbaden", "Gelsenkirchen",
			"Mönchengladbach", "Braunschweig", "Kiel", "Aachen", "Magdeburg",
		},
		Streets: []string{
			"Hauptstraße", "Schulstraße", "Bahnhofstraße", "Gartenstraße",
			"Kirchstraße", "Bergstraße", "Waldstraße", "Ringstraße",
			"Parkstraße", "Lindenstraße", "Friedhofstraße", "Marktstraße",
			"Rosenstraße", "Mühlenweg", "Schillerstraße", "Goethestraße",
			"Mozartstraße", "Beethovenstraße", "Bismarckstraße", "Uhlandstraße",
		},
		FirstNamesMale: []string{
			"Alexander", "Maximilian", "Paul", "Leon", "Luis", "Luca", "Felix",
			"Jonas", "David", "Elias", "Julian", "Finn", "Noah", "Benjamin",
			"Niklas", "Daniel", "Simon", "Jakob", "Lucas", "Rafael",
		},
		FirstNamesFemale: []string{
			"Emma", "Mia", "Hannah", "Sofia", "Anna", "Lea", "Emilia", "Marie",
			"Lena", "Leonie", "Julia", "Laura", "Sarah", "Lisa", "Lara",
			"Victoria", "Elena", "Amelie", "Clara", "Sophie",
		},
		LastNamesMale: []string{
			"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner",
			"Becker", "Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter",
			"Klein", "Wolf", "Schröder", "Neumann", "Schwarz", "Zimmermann",
		},
		LastNamesFemale: []string{
			"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner",
			"Becker", "Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter",
			"Klein", "Wolf", "Schröder", "Neumann", "Schwarz", "Zimmermann",
		},
		EmailDomains: []string{
			"gmail.com", "yahoo.de", "hotmail.de", "outlook.de", "web.de",
			"gmx.de", "t-online.de", "mail.de", "protonmail.com", "freenet.de",
		},
		Occupations: []string{
			"Softwareentwickler", "Arzt", "Lehrer", "Ingenieur", "Designer", "Manager",
			"Buchhalter", "Rechtsanwalt", "Architekt", "Marketingmanager", "Datenwissenschaftler",
			"Projektleiter", "UX-Designer", "Geschäftsanalyst", "Finanzberater",
			"Vertriebsleiter", "Personalreferent", "Systemadministrator", "DevOps-Ingenieur",
			"Texter", "Online-Marketing-Manager", "Wissenschaftler", "Professor",
			"Apotheker", "Zahnarzt", "Tierarzt", "Immobilienmakler", "Logistikmanager",
			"Social-Media-Manager", "Unternehmensberater",
		},
		EducationLevels: []string{
			"Hauptschulabschluss", "Realschulabschluss", "Abitur", "Bachelor",
			"Master", "Promotion", "Ausbildung", "Diplom", "Staatsexamen",
			"Meister", "Fachwirt",
		},
		Universities: []string{
			"Technische Universität München", "Ludwig-Maximilians-Universität München",
			"Humboldt-Universität zu Berlin", "Freie Universität Berlin",
			"Universität Heidelberg", "RWTH Aachen", "Universität Hamburg",
			"Technische Universität Berlin", "Universität Frankfurt",
			"Universität Köln",
		},
		Languages: []string{
			"Deutsch", "Englisch", "Französisch", "Spanisch", "Italienisch", "Russisch",
			"Türkisch", "Arabisch", "Chinesisch", "Japanisch", "Portugiesisch", "Polnisch",
			"Niederländisch", "Schwedisch", "Tschechisch", "Griechisch", "Koreanisch",
			"Ungarisch", "Rumänisch", "Kroatisch",
		},
		Hobbies: []string{
			"Lesen", "Reisen", "Fotografie", "Sport", "Musik", "Kochen",
			"Malen", "Yoga", "Tanzen", "Gartenarbeit", "Programmierung", "Schach",
			"Angeln", "Wandern", "Radfahren", "Laufen", "Schwimmen", "Klettern",
			"Brettspiele", "Sammeln", "Basteln", "Meditation",
			"Freiwilligenarbeit", "Bloggen", "Fitness", "Bergsteigen", "Surfen", "Skifahren",
			"Gitarre", "Klavier", "Gesang", "Theater", "Kino", "Gaming", "Heimwerken",
		},
		MaritalStatuses: []string{"Ledig", "Verheiratet", "Geschieden", "Verwitwet"},
	},
	"FR": {
		Name:        "France",
		PhonePrefix: "+33",
		Cities: []string{
			"Paris", "Marseille", "Lyon", "Toulouse", "Nice",
			"Nantes", "Strasbourg", "Montpellier", "Bordeaux", "Lille",
			"Rennes", "Reims", "Le Havre", "Saint-Étienne", "Toulon",
			"Grenoble", "Dijon", "Angers", "Nîmes", "Villeurbanne",
			"Le Mans", "Aix-en-Provence", "Brest", "Tours", "Amiens",
			"Limoges", "Clermont-Ferrand", "Besançon", "Metz", "Caen",
		},
		Streets: []string{
			"Rue de la République", "Rue de Paris", "Rue de l'Église",
			"Avenue des Champs-Élysées", "Boulevard Saint-Michel",
			"Rue Victor Hugo", "Avenue Jean Jaurès", "Rue Pasteur",
			"Boulevard de la Liberté", "Rue du Commerce", "Place de la Mairie",
			"Rue des Écoles", "Avenue de la Gare", "Rue de la Paix",
			"Boulevard Gambetta", "Rue Émile Zola", "Avenue Foch",
			"Rue Saint-Jacques", "Place de la République", "Rue Nationale",
		},
		FirstNamesMale: []string{
			"Gabriel", "Louis", "Raphaël", "Jules", "Adam", "Lucas", "Léo",
			"Hugo", "Arthur", "Nathan", "Thomas", "Paul", "Alexandre", "Antoine",
			"Maxime", "Baptiste", "Nicolas", "Mohamed", "Théo", "Ethan",
		},
		FirstNamesFemale: []string{
			"Emma", "Louise", "Jade", "Alice", "Chloé", "Lina", "Léa", "Rose",
			"Anna", "Mila", "Julia", "Marie", "Inès", "Zoé", "Sarah",
			"Camille", "Sofia", "Charlotte", "Manon", "Juliette",
		},
		LastNamesMale: []string{
			"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit",
			"Durand", "Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel",
			"Garcia", "David", "Bertrand", "Roux", "Vincent", "Fournier",
		},
		LastNamesFemale: []string{
			"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit",
			"Durand", "Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel",
			"Garcia", "David", "Bertrand", "Roux", "Vincent", "Fournier",
		},
		EmailDomains: []string{
			"gmail.com", "yahoo.fr", "hotmail.fr", "outlook.fr", "orange.fr",
			"laposte.net", "free.fr", "sfr.fr", "protonmail.com", "wanadoo.fr",
		},
		Occupations: []string{
			"Développeur", "Médecin", "Professeur", "Ingénieur", "Designer", "Manager",
			"Comptable", "Avocat", "Architecte", "Responsable Marketing", "Data Scientist",
			"Chef de Projet", "Designer UX", "Analyste d'Affaires", "Conseiller Financier",
			"Commercial", "Responsable RH", "Administrateur Système", "Ingénieur DevOps",
			"Rédacteur", "Responsable Marketing Digital", "Chercheur", "Professeur",
			"Pharmacien", "Dentiste", "Vétérinaire", "Agent Immobilier", "Responsable Logistique",
			"Community Manager", "Consultant en Management",
		},
		EducationLevels: []string{
			"Baccalauréat", "BTS/DUT", "Licence", "Master", "Doctorat",
			"Grande École", "CAP", "BEP", "DEUG", "Licence Professionnelle",
			"Diplôme d'Ingénieur",
		},
		Universities: []string{
			"Sorbonne Université", "École Polytechnique", "Sciences Po",
			"École Normale Supérieure", "HEC Paris", "ESSEC",
			"Université Paris-Saclay", "CentraleSupélec",
			"École des Ponts ParisTech", "INSEAD",
		},
		Languages: []string{
			"Français", "Anglais", "Allemand", "Espagnol", "Italien", "Arabe",
			"Chinois", "Japonais", "Portugais", "Russe", "Néerlandais", "Turc",
			"Polonais", "Grec", "Suédois", "Coréen", "Hindi", "Vietnamien",
			"Roumain", "Hongrois",
		},
		Hobbies: []string{
			"Lecture", "Voyages", "Photographie", "Sport", "Musique", "Cuisine",
			"Peinture", "Yoga", "Danse", "Jardinage", "Programmation", "Échecs",
			"Pêche", "Randonnée", "Cyclisme", "Course", "Natation", "Escalade",
			"Jeux de société", "Collection", "Bricolage", "Méditation",
			"Bénévolat", "Blogging", "Fitness", "Alpinisme", "Surf", "Ski",
			"Guitare", "Piano", "Chant", "Théâtre", "Cinéma", "Jeux vidéo", "DIY",
		},
		MaritalStatuses: []string{"Célibataire", "Marié(e)", "Divorcé(e)", "Veuf/Veuve"},
	},
}
