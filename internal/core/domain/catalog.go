package domain

import (
	"regexp"
	"strings"
)

// Catalog is the static currency pattern table plus the ordered
// country-alias list. It is built once at startup and never mutated.
//
// Ordering is the entire disambiguation story. Go's RE2 engine has no
// lookbehind, so the bare "$" of USD cannot exclude prefixed dollar
// symbols the way a lookbehind would; instead every prefixed-dollar
// currency (A$, C$, S$, HK$, NZ$, NT$, R$) is listed before USD so its
// pattern wins first. "¥" resolves to JPY before CNY purely by position.
type Catalog struct {
	Currencies []CurrencyDefinition
	Aliases    []CountryAlias

	byCode map[string]*CurrencyDefinition
}

func sym(expr string) CurrencyPattern {
	return CurrencyPattern{Expr: regexp.MustCompile("(?i)" + expr), Symbolic: true}
}

func txt(expr string) CurrencyPattern {
	return CurrencyPattern{Expr: regexp.MustCompile("(?i)" + expr), Symbolic: false}
}

const amount = `\s*(\d+(?:\.\d+)?)`

// NewCatalog builds the compiled catalog.
func NewCatalog() *Catalog {
	c := &Catalog{
		Currencies: []CurrencyDefinition{
			// Prefixed dollar symbols first so the bare "$" never shadows them.
			{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Patterns: []CurrencyPattern{
				sym(`A\$` + amount),
				txt(amount + `\s*AUD`),
				txt(`Australian\s*Dollar`),
			}},
			{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Patterns: []CurrencyPattern{
				sym(`C\$` + amount),
				txt(amount + `\s*CAD`),
				txt(`Canadian\s*Dollar`),
			}},
			{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Patterns: []CurrencyPattern{
				sym(`S\$` + amount),
				txt(amount + `\s*SGD`),
				txt(`Singapore\s*Dollar`),
			}},
			{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", Patterns: []CurrencyPattern{
				sym(`HK\$` + amount),
				txt(amount + `\s*HKD`),
				txt(`Hong\s*Kong\s*Dollar`),
			}},
			{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", Patterns: []CurrencyPattern{
				sym(`NZ\$` + amount),
				txt(amount + `\s*NZD`),
				txt(`New\s*Zealand\s*Dollar`),
			}},
			{Code: "TWD", Name: "Taiwan Dollar", Symbol: "NT$", Patterns: []CurrencyPattern{
				sym(`NT\$` + amount),
				txt(amount + `\s*TWD`),
				txt(`Taiwan\s*Dollar`),
			}},
			{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Patterns: []CurrencyPattern{
				sym(`R\$` + amount),
				txt(amount + `\s*BRL`),
				txt(`Brazilian\s*Real`),
			}},

			// Majors.
			{Code: "USD", Name: "US Dollar", Symbol: "$", Patterns: []CurrencyPattern{
				sym(`\$` + amount),
				txt(amount + `\s*USD`),
				txt(`US\s*Dollar`),
				txt(`Dollar`),
			}},
			{Code: "EUR", Name: "Euro", Symbol: "€", Patterns: []CurrencyPattern{
				sym(`€` + amount),
				txt(amount + `\s*EUR`),
				txt(`Euro`),
			}},
			{Code: "GBP", Name: "British Pound", Symbol: "£", Patterns: []CurrencyPattern{
				sym(`£` + amount),
				txt(amount + `\s*GBP`),
				txt(`British\s*Pound`),
				txt(`Pound`),
			}},
			{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Patterns: []CurrencyPattern{
				sym(`¥` + amount),
				txt(amount + `\s*JPY`),
				txt(`Japanese\s*Yen`),
				txt(`Yen`),
			}},
			{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Patterns: []CurrencyPattern{
				sym(`¥` + amount),
				txt(amount + `\s*CNY`),
				txt(`Chinese\s*Yuan`),
				txt(`Yuan`),
				txt(`RMB`),
			}},
			{Code: "KRW", Name: "South Korean Won", Symbol: "₩", Patterns: []CurrencyPattern{
				sym(`₩` + amount),
				txt(amount + `\s*KRW`),
				txt(`Korean\s*Won`),
				txt(`Won`),
			}},
			{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Patterns: []CurrencyPattern{
				sym(`₹` + amount),
				txt(amount + `\s*INR`),
				txt(`Indian\s*Rupee`),
				txt(`Rupee`),
			}},
			{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Patterns: []CurrencyPattern{
				sym(`CHF` + amount),
				txt(amount + `\s*CHF`),
				txt(`Swiss\s*Franc`),
			}},
			{Code: "ILS", Name: "Israeli Shekel", Symbol: "₪", Patterns: []CurrencyPattern{
				sym(`₪` + amount),
				txt(amount + `\s*ILS`),
				txt(`Israeli\s*Shekel`),
				txt(`Shekel`),
			}},

			// Asia.
			{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", Patterns: []CurrencyPattern{
				sym(`RM` + amount),
				txt(amount + `\s*MYR`),
				txt(`Malaysian\s*Ringgit`),
				txt(`Ringgit`),
			}},
			{Code: "THB", Name: "Thai Baht", Symbol: "฿", Patterns: []CurrencyPattern{
				sym(`฿` + amount),
				txt(amount + `\s*THB`),
				txt(`Thai\s*Baht`),
				txt(`Baht`),
			}},
			{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫", Patterns: []CurrencyPattern{
				sym(`₫` + amount),
				txt(amount + `\s*VND`),
				txt(`Vietnamese\s*Dong`),
				txt(`Dong`),
			}},
			{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", Patterns: []CurrencyPattern{
				sym(`Rp` + amount),
				txt(amount + `\s*IDR`),
				txt(`Indonesian\s*Rupiah`),
				txt(`Rupiah`),
			}},
			{Code: "PHP", Name: "Philippine Peso", Symbol: "₱", Patterns: []CurrencyPattern{
				sym(`₱` + amount),
				txt(amount + `\s*PHP`),
				txt(`Philippine\s*Peso`),
				txt(`Peso`),
			}},

			// Middle East.
			{Code: "AED", Name: "UAE Dirham", Symbol: "AED", Patterns: []CurrencyPattern{
				txt(amount + `\s*AED`),
				txt(`UAE\s*Dirham`),
				txt(`Dirham`),
			}},
			{Code: "SAR", Name: "Saudi Riyal", Symbol: "SAR", Patterns: []CurrencyPattern{
				txt(amount + `\s*SAR`),
				txt(`Saudi\s*Riyal`),
			}},
			{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "KWD", Patterns: []CurrencyPattern{
				txt(amount + `\s*KWD`),
				txt(`Kuwaiti\s*Dinar`),
			}},
			{Code: "BHD", Name: "Bahraini Dinar", Symbol: "BHD", Patterns: []CurrencyPattern{
				txt(amount + `\s*BHD`),
				txt(`Bahraini\s*Dinar`),
			}},
			{Code: "OMR", Name: "Omani Rial", Symbol: "OMR", Patterns: []CurrencyPattern{
				txt(amount + `\s*OMR`),
				txt(`Omani\s*Rial`),
			}},
			{Code: "JOD", Name: "Jordanian Dinar", Symbol: "JOD", Patterns: []CurrencyPattern{
				txt(amount + `\s*JOD`),
				txt(`Jordanian\s*Dinar`),
			}},
			{Code: "TRY", Name: "Turkish Lira", Symbol: "TRY", Patterns: []CurrencyPattern{
				txt(amount + `\s*TRY`),
				txt(`Turkish\s*Lira`),
			}},

			// Europe (non-euro).
			{Code: "RUB", Name: "Russian Ruble", Symbol: "RUB", Patterns: []CurrencyPattern{
				txt(amount + `\s*RUB`),
				txt(`Russian\s*Ruble`),
			}},
			{Code: "UAH", Name: "Ukrainian Hryvnia", Symbol: "UAH", Patterns: []CurrencyPattern{
				txt(amount + `\s*UAH`),
				txt(`Ukrainian\s*Hryvnia`),
			}},
			{Code: "PLN", Name: "Polish Zloty", Symbol: "PLN", Patterns: []CurrencyPattern{
				txt(amount + `\s*PLN`),
				txt(`Polish\s*Zloty`),
			}},
			{Code: "CZK", Name: "Czech Koruna", Symbol: "CZK", Patterns: []CurrencyPattern{
				txt(amount + `\s*CZK`),
				txt(`Czech\s*Koruna`),
			}},
			{Code: "HUF", Name: "Hungarian Forint", Symbol: "HUF", Patterns: []CurrencyPattern{
				txt(amount + `\s*HUF`),
				txt(`Hungarian\s*Forint`),
			}},
			{Code: "SEK", Name: "Swedish Krona", Symbol: "SEK", Patterns: []CurrencyPattern{
				txt(amount + `\s*SEK`),
				txt(`Swedish\s*Krona`),
			}},
			{Code: "NOK", Name: "Norwegian Krone", Symbol: "NOK", Patterns: []CurrencyPattern{
				txt(amount + `\s*NOK`),
				txt(`Norwegian\s*Krone`),
			}},
			{Code: "DKK", Name: "Danish Krone", Symbol: "DKK", Patterns: []CurrencyPattern{
				txt(amount + `\s*DKK`),
				txt(`Danish\s*Krone`),
			}},

			// Americas.
			{Code: "MXN", Name: "Mexican Peso", Symbol: "MXN", Patterns: []CurrencyPattern{
				txt(amount + `\s*MXN`),
				txt(`Mexican\s*Peso`),
			}},
			{Code: "ARS", Name: "Argentine Peso", Symbol: "ARS", Patterns: []CurrencyPattern{
				txt(amount + `\s*ARS`),
				txt(`Argentine\s*Peso`),
			}},
			{Code: "CLP", Name: "Chilean Peso", Symbol: "CLP", Patterns: []CurrencyPattern{
				txt(amount + `\s*CLP`),
				txt(`Chilean\s*Peso`),
			}},
			{Code: "COP", Name: "Colombian Peso", Symbol: "COP", Patterns: []CurrencyPattern{
				txt(amount + `\s*COP`),
				txt(`Colombian\s*Peso`),
			}},
			{Code: "PEN", Name: "Peruvian Sol", Symbol: "PEN", Patterns: []CurrencyPattern{
				txt(amount + `\s*PEN`),
				txt(`Peruvian\s*Sol`),
			}},

			// Africa. ZAR stays last among symbolic patterns: its bare "R"
			// prefix collides with anything ending in R followed by digits.
			{Code: "ZAR", Name: "South African Rand", Symbol: "R", Patterns: []CurrencyPattern{
				sym(`R` + amount),
				txt(amount + `\s*ZAR`),
				txt(`South\s*African\s*Rand`),
			}},
			{Code: "EGP", Name: "Egyptian Pound", Symbol: "EGP", Patterns: []CurrencyPattern{
				txt(amount + `\s*EGP`),
				txt(`Egyptian\s*Pound`),
			}},
			{Code: "NGN", Name: "Nigerian Naira", Symbol: "NGN", Patterns: []CurrencyPattern{
				txt(amount + `\s*NGN`),
				txt(`Nigerian\s*Naira`),
			}},
			{Code: "KES", Name: "Kenyan Shilling", Symbol: "KES", Patterns: []CurrencyPattern{
				txt(amount + `\s*KES`),
				txt(`Kenyan\s*Shilling`),
			}},
			{Code: "MAD", Name: "Moroccan Dirham", Symbol: "MAD", Patterns: []CurrencyPattern{
				txt(amount + `\s*MAD`),
				txt(`Moroccan\s*Dirham`),
			}},
			{Code: "TND", Name: "Tunisian Dinar", Symbol: "TND", Patterns: []CurrencyPattern{
				txt(amount + `\s*TND`),
				txt(`Tunisian\s*Dinar`),
			}},
		},
		Aliases: countryAliases(),
	}

	c.byCode = make(map[string]*CurrencyDefinition, len(c.Currencies))
	for i := range c.Currencies {
		c.byCode[c.Currencies[i].Code] = &c.Currencies[i]
	}
	return c
}

// Lookup returns the definition for a currency code, if known.
func (c *Catalog) Lookup(code string) (*CurrencyDefinition, bool) {
	def, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return def, ok
}

// countryAliases returns the ordered country/nationality word list. The
// order is load-bearing: aliases are substring-matched top to bottom, so
// an alias that is a substring of a later one (e.g. "korea" before
// "south korea") decides first.
func countryAliases() []CountryAlias {
	return []CountryAlias{
		// Asia.
		{"china", "CNY"}, {"chinese", "CNY"},
		{"japan", "JPY"}, {"japanese", "JPY"},
		{"korea", "KRW"}, {"korean", "KRW"}, {"south korea", "KRW"},
		{"india", "INR"}, {"indian", "INR"},
		{"thailand", "THB"}, {"thai", "THB"},
		{"vietnam", "VND"}, {"vietnamese", "VND"},
		{"indonesia", "IDR"}, {"indonesian", "IDR"},
		{"philippines", "PHP"}, {"philippine", "PHP"},
		{"malaysia", "MYR"}, {"malaysian", "MYR"},
		{"singapore", "SGD"}, {"singaporean", "SGD"},
		{"hong kong", "HKD"}, {"taiwan", "TWD"},
		{"pakistan", "PKR"}, {"pakistani", "PKR"},
		{"bangladesh", "BDT"}, {"bangladeshi", "BDT"},
		{"sri lanka", "LKR"}, {"nepal", "NPR"}, {"nepalese", "NPR"},
		{"myanmar", "MMK"}, {"cambodia", "KHR"}, {"cambodian", "KHR"},
		{"laos", "LAK"}, {"laotian", "LAK"}, {"brunei", "BND"}, {"macau", "MOP"},
		{"mongolia", "MNT"}, {"mongolian", "MNT"},
		{"kazakhstan", "KZT"}, {"uzbekistan", "UZS"},
		{"kyrgyzstan", "KGS"}, {"tajikistan", "TJS"},
		{"afghanistan", "AFN"}, {"afghan", "AFN"},

		// Middle East.
		{"uae", "AED"}, {"united arab emirates", "AED"},
		{"saudi arabia", "SAR"}, {"saudi", "SAR"},
		{"kuwait", "KWD"}, {"kuwaiti", "KWD"},
		{"bahrain", "BHD"}, {"bahraini", "BHD"},
		{"oman", "OMR"}, {"omani", "OMR"},
		{"jordan", "JOD"}, {"jordanian", "JOD"},
		{"lebanon", "LBP"}, {"lebanese", "LBP"},
		{"israel", "ILS"}, {"israeli", "ILS"},
		{"turkey", "TRY"}, {"turkish", "TRY"},
		{"iran", "IRR"}, {"iranian", "IRR"},
		{"iraq", "IQD"}, {"iraqi", "IQD"},
		{"syria", "SYP"}, {"syrian", "SYP"},
		{"yemen", "YER"}, {"yemeni", "YER"},

		// Europe.
		{"europe", "EUR"}, {"european", "EUR"},
		{"germany", "EUR"}, {"german", "EUR"},
		{"france", "EUR"}, {"french", "EUR"},
		{"italy", "EUR"}, {"italian", "EUR"},
		{"spain", "EUR"}, {"spanish", "EUR"},
		{"netherlands", "EUR"}, {"dutch", "EUR"},
		{"belgium", "EUR"}, {"belgian", "EUR"},
		{"austria", "EUR"}, {"austrian", "EUR"},
		{"portugal", "EUR"}, {"portuguese", "EUR"},
		{"finland", "EUR"}, {"finnish", "EUR"},
		{"ireland", "EUR"}, {"irish", "EUR"},
		{"greece", "EUR"}, {"greek", "EUR"},
		{"united kingdom", "GBP"}, {"britain", "GBP"}, {"british", "GBP"},
		{"switzerland", "CHF"}, {"swiss", "CHF"},
		{"sweden", "SEK"}, {"swedish", "SEK"},
		{"norway", "NOK"}, {"norwegian", "NOK"},
		{"denmark", "DKK"}, {"danish", "DKK"},
		{"poland", "PLN"}, {"polish", "PLN"},
		{"czech republic", "CZK"}, {"czech", "CZK"},
		{"hungary", "HUF"}, {"hungarian", "HUF"},
		{"russia", "RUB"}, {"russian", "RUB"},
		{"ukraine", "UAH"}, {"ukrainian", "UAH"},

		// Americas.
		{"usa", "USD"}, {"united states", "USD"}, {"america", "USD"}, {"american", "USD"},
		{"canada", "CAD"}, {"canadian", "CAD"},
		{"mexico", "MXN"}, {"mexican", "MXN"},
		{"brazil", "BRL"}, {"brazilian", "BRL"},
		{"argentina", "ARS"}, {"argentine", "ARS"},
		{"chile", "CLP"}, {"chilean", "CLP"},
		{"colombia", "COP"}, {"colombian", "COP"},
		{"peru", "PEN"}, {"peruvian", "PEN"},

		// Africa.
		{"south africa", "ZAR"}, {"south african", "ZAR"},
		{"egypt", "EGP"}, {"egyptian", "EGP"},
		{"nigeria", "NGN"}, {"nigerian", "NGN"},
		{"kenya", "KES"}, {"kenyan", "KES"},
		{"morocco", "MAD"}, {"moroccan", "MAD"},
		{"tunisia", "TND"}, {"tunisian", "TND"},

		// Oceania.
		{"australia", "AUD"}, {"australian", "AUD"},
		{"new zealand", "NZD"},
	}
}
