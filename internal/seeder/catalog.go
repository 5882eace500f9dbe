package seeder

// Fixed catalogs the generator draws from. Everything here mirrors the
// store's sample data: Brazilian names and cities, the appliance category
// tree and the six coupon codes the storefront expects.

type specTemplate struct {
	Key     string
	Options []string
}

type categoryTemplate struct {
	Name     string
	Icon     string
	Noun     string   // product name prefix, singular
	Variants []string // trailing size/feature token, may be empty
	PriceMin int
	PriceMax int
	Specs    []specTemplate
}

var (
	voltageOptions = []string{"110V", "220V", "Bivolt"}
	energyOptions  = []string{"Classe A", "Classe A+", "Classe A++"}
)

var categoryTemplates = []categoryTemplate{
	{
		Name: "Geladeiras", Icon: "refrigerator", Noun: "Geladeira",
		Variants: []string{"443L", "500L", "600L", "700L"},
		PriceMin: 2000, PriceMax: 5000,
		Specs: []specTemplate{
			{"Capacidade", []string{"300L", "450L", "550L", "700L"}},
			{"Tipo", []string{"Frost Free", "Duplex", "Side by Side"}},
			{"Consumo", energyOptions},
			{"Voltagem", voltageOptions},
			{"Dimensões", []string{"70 x 75 x 178 cm", "80 x 74 x 186 cm", "90 x 80 x 195 cm"}},
		},
	},
	{
		Name: "Fogões", Icon: "chef-hat", Noun: "Fogão",
		Variants: []string{"4 Bocas", "5 Bocas", "6 Bocas"},
		PriceMin: 800, PriceMax: 2500,
		Specs: []specTemplate{
			{"Bocas", []string{"4", "5", "6"}},
			{"Tipo", []string{"Gás", "Elétrico", "Indução"}},
			{"Acendimento", []string{"Automático", "Manual", "Piezo"}},
			{"Voltagem", []string{"110V", "220V"}},
		},
	},
	{
		Name: "Micro-ondas", Icon: "microwave", Noun: "Micro-ondas",
		Variants: []string{"20L", "31L", "40L"},
		PriceMin: 400, PriceMax: 1200,
		Specs: []specTemplate{
			{"Capacidade", []string{"20L", "31L", "40L"}},
			{"Potência", []string{"700W", "900W", "1100W", "1200W"}},
			{"Funções", []string{"Grill", "Convecção", "Descongelar"}},
			{"Voltagem", voltageOptions},
		},
	},
	{
		Name: "Lavadoras", Icon: "washing-machine", Noun: "Lavadora",
		Variants: []string{"10kg", "12kg", "15kg", "18kg"},
		PriceMin: 1500, PriceMax: 3500,
		Specs: []specTemplate{
			{"Capacidade", []string{"10kg", "12kg", "15kg", "18kg"}},
			{"Tipo", []string{"Automática", "Semi-automática", "Lavadora e Secadora"}},
			{"Consumo", energyOptions},
			{"Voltagem", voltageOptions},
		},
	},
	{
		Name: "Ar Condicionado", Icon: "wind", Noun: "Ar Condicionado",
		Variants: []string{"9000 BTUs", "12000 BTUs", "18000 BTUs", "24000 BTUs"},
		PriceMin: 2000, PriceMax: 6000,
		Specs: []specTemplate{
			{"BTUs", []string{"9000 BTUs", "12000 BTUs", "18000 BTUs", "24000 BTUs"}},
			{"Tipo", []string{"Split", "Janela", "Portátil"}},
			{"Consumo", []string{"Classe A", "Classe A+", "Inverter"}},
			{"Voltagem", voltageOptions},
		},
	},
	{
		Name: "Cooktops", Icon: "cooktop", Noun: "Cooktop",
		Variants: []string{"4 Bocas", "5 Bocas"},
		PriceMin: 1200, PriceMax: 3000,
		Specs: []specTemplate{
			{"Bocas", []string{"4", "5"}},
			{"Tipo", []string{"Gás", "Elétrico", "Indução"}},
			{"Acendimento", []string{"Automático", "Manual", "Piezo"}},
			{"Voltagem", []string{"110V", "220V"}},
		},
	},
	{
		Name: "Lava-louças", Icon: "dishwasher", Noun: "Lava-louças",
		Variants: []string{"8 Serviços", "10 Serviços", "14 Serviços"},
		PriceMin: 2000, PriceMax: 5000,
		Specs: []specTemplate{
			{"Serviços", []string{"8", "10", "14"}},
			{"Consumo", energyOptions},
			{"Voltagem", voltageOptions},
		},
	},
	{
		Name: "Aspiradores", Icon: "vacuum", Noun: "Aspirador",
		Variants: []string{"Vertical", "Robô", "Portátil"},
		PriceMin: 300, PriceMax: 1500,
		Specs: []specTemplate{
			{"Voltagem", voltageOptions},
			{"Consumo", energyOptions},
		},
	},
	{
		Name: "Purificadores", Icon: "water-filter", Noun: "Purificador",
		Variants: nil,
		PriceMin: 500, PriceMax: 2000,
		Specs: []specTemplate{
			{"Voltagem", voltageOptions},
			{"Consumo", energyOptions},
		},
	},
	{
		Name: "Secadoras", Icon: "dryer", Noun: "Secadora",
		Variants: []string{"8kg", "10kg", "12kg"},
		PriceMin: 2000, PriceMax: 4500,
		Specs: []specTemplate{
			{"Capacidade", []string{"8kg", "10kg", "12kg"}},
			{"Tipo", []string{"Automática", "Semi-automática"}},
			{"Consumo", energyOptions},
			{"Voltagem", voltageOptions},
		},
	},
	{
		Name: "Fornos", Icon: "oven", Noun: "Forno",
		Variants: []string{"Eletrônico", "Autolimpeza", "Self Clean"},
		PriceMin: 1500, PriceMax: 4000,
		Specs: []specTemplate{
			{"Voltagem", voltageOptions},
			{"Consumo", energyOptions},
		},
	},
	{
		Name: "Freezers", Icon: "freezer", Noun: "Freezer",
		Variants: []string{"200L", "300L", "400L"},
		PriceMin: 1500, PriceMax: 3500,
		Specs: []specTemplate{
			{"Capacidade", []string{"200L", "300L", "400L"}},
			{"Tipo", []string{"Horizontal", "Vertical"}},
			{"Consumo", energyOptions},
			{"Voltagem", voltageOptions},
		},
	},
}

var brands = []string{"Electrolux", "Brastemp", "Consul", "LG", "Samsung", "Panasonic", "Midea", "Philco"}

var productModels = []string{"Premium", "Pro", "Turbo", "Inverter", "Frost Free", "Smart", "Eco", "Plus"}

// Static catalogue images; the storefront resolves them at render time, the
// seeder never downloads anything.
var productImageURLs = []string{
	"https://images.unsplash.com/photo-1556912172-45b7abe8b7c4?w=800&h=800&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?w=800&h=800&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&h=800&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1556912167-f556f1f39fdf?w=800&h=800&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1581578018747-946a3e7e5a3e?w=800&h=800&fit=crop&auto=format&q=80",
}

var firstNames = []string{
	"João", "Maria", "Pedro", "Ana", "Carlos", "Juliana", "Fernando", "Patricia",
	"Ricardo", "Camila", "Roberto", "Mariana", "Lucas", "Beatriz", "Rafael", "Gabriela",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Pereira", "Costa", "Rodrigues", "Almeida",
	"Nascimento", "Lima", "Araújo", "Ferreira", "Ribeiro", "Carvalho", "Gomes", "Martins",
}

// cityStates pairs each city with its state so generated addresses stay
// geographically consistent.
var cityStates = []struct {
	City  string
	State string
}{
	{"São Paulo", "SP"},
	{"Rio de Janeiro", "RJ"},
	{"Belo Horizonte", "MG"},
	{"Curitiba", "PR"},
	{"Porto Alegre", "RS"},
	{"Brasília", "DF"},
	{"Salvador", "BA"},
	{"Recife", "PE"},
	{"Fortaleza", "CE"},
	{"Manaus", "AM"},
}

var streets = []string{"Rua das Flores", "Avenida Principal", "Rua Comercial", "Avenida Central", "Rua Nova"}

var complements = []string{"Apto 101", "Casa", "Sala 205", ""}

// The neighborhood column is blank-permitted; the empty entry exercises that.
var neighborhoods = []string{
	"Centro", "Jardim Paulista", "Copacabana", "Savassi", "Boa Viagem",
	"Moinhos de Vento", "Meireles", "Asa Sul", "",
}

type couponTemplate struct {
	Code       string
	Percentage int     // percentage discount, 0 when value-based
	Value      float64 // fixed-amount discount, 0 when percentage-based
	MaxUses    int
	ValidDays  int
}

var couponCatalog = []couponTemplate{
	{Code: "BEMVINDO10", Percentage: 10, MaxUses: 100, ValidDays: 365},
	{Code: "FRETEGRATIS", Value: 29.90, MaxUses: 50, ValidDays: 180},
	{Code: "BLACKFRIDAY", Percentage: 30, MaxUses: 200, ValidDays: 30},
	{Code: "PRIMAVERA15", Percentage: 15, MaxUses: 150, ValidDays: 90},
	{Code: "DESCONTO20", Percentage: 20, MaxUses: 100, ValidDays: 60},
	{Code: "CASHBACK50", Value: 50.00, MaxUses: 30, ValidDays: 45},
}

// Order statuses and their sampling weights.
const (
	statusPending    = "PENDING"
	statusPaid       = "PAID"
	statusProcessing = "PROCESSING"
	statusShipped    = "SHIPPED"
	statusDelivered  = "DELIVERED"
	statusCancelled  = "CANCELLED"
)

var orderStatuses = []string{
	statusPending, statusPaid, statusProcessing, statusShipped, statusDelivered, statusCancelled,
}

var orderStatusWeights = []float64{0.10, 0.20, 0.20, 0.20, 0.25, 0.05}

// paidStatuses are the order states that imply a completed payment.
var paidStatuses = map[string]bool{
	statusPaid:       true,
	statusProcessing: true,
	statusShipped:    true,
	statusDelivered:  true,
}

var paymentMethods = []string{"PIX", "CREDIT_CARD", "DEBIT_CARD", "BOLETO"}

var paymentMethodWeights = []float64{0.30, 0.40, 0.20, 0.10}

const standardShipping = 29.90

var reviewComments = []string{
	"Produto excelente, superou minhas expectativas!",
	"Muito bom, recomendo.",
	"Ótimo custo-benefício.",
	"Produto de qualidade, entrega rápida.",
	"Funciona perfeitamente, estou satisfeito.",
	"Bom produto, mas poderia ser melhor.",
	"Atendeu minhas necessidades.",
	"Excelente qualidade, vale a pena.",
}

type bannerTemplate struct {
	Title    string
	Subtitle string
	ImageURL string
	Link     string
	Order    int
}

var bannerCatalog = []bannerTemplate{
	{
		Title:    "Promoção de Verão",
		Subtitle: "Até 40% OFF em toda linha",
		ImageURL: "https://images.unsplash.com/photo-1556912172-45b7abe8b7c4?w=1200&h=400&fit=crop&auto=format&q=80",
		Link:     "/products?sortBy=rating",
		Order:    1,
	},
	{
		Title:    "Novos Lançamentos",
		Subtitle: "Conheça nossa linha premium",
		ImageURL: "https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?w=1200&h=400&fit=crop&auto=format&q=80",
		Link:     "/products",
		Order:    2,
	},
	{
		Title:    "Frete Grátis",
		Subtitle: "Para compras acima de R$ 499",
		ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1200&h=400&fit=crop&auto=format&q=80",
		Link:     "/products",
		Order:    3,
	},
}

type contactTemplate struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Exactly ten sample messages, independent of the generated users.
var contactCatalog = []contactTemplate{
	{"Helena Barbosa", "helena.barbosa@example.com", "Dúvida sobre produto", "Gostaria de mais informações sobre este produto."},
	{"Marcos Teixeira", "marcos.teixeira@example.com", "Problema com pedido", "Tive um problema com meu pedido, preciso de ajuda."},
	{"Larissa Moura", "larissa.moura@example.com", "Sugestão de melhoria", "Sugiro melhorias no atendimento."},
	{"Paulo Cardoso", "paulo.cardoso@example.com", "Reclamação", "Não estou satisfeito com o produto recebido."},
	{"Renata Freitas", "renata.freitas@example.com", "Elogio", "Parabéns pelo excelente atendimento!"},
	{"Gustavo Pinto", "gustavo.pinto@example.com", "Informação sobre garantia", "Preciso de informações sobre a garantia."},
	{"Aline Rocha", "aline.rocha@example.com", "Dúvida sobre produto", "A geladeira modelo Inverter acompanha filtro?"},
	{"Bruno Dias", "bruno.dias@example.com", "Problema com pedido", "Meu pedido consta como entregue mas não recebi."},
	{"Carla Mendes", "carla.mendes@example.com", "Dúvida sobre produto", "Qual a voltagem do cooktop 5 bocas?"},
	{"Diego Azevedo", "diego.azevedo@example.com", "Elogio", "Entrega antes do prazo, ótima experiência."},
}
