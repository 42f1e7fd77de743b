package domain

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Price       float64
	Gender      string // men|women|unisex, без жёсткого перечисления
	Category    string
	Sizes       []string
	Images      []string
	Description *string
	Tags        []string
	Featured    bool
	NewArrival  bool
}

// NewProduct создаёт товар с обязательными полями. Списки инициализируются пустыми,
// чтобы наружу они отдавались как [], а не null.
func NewProduct(id, name string, price float64, gender, category string) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Gender:   gender,
		Category: category,
		Sizes:    []string{},
		Images:   []string{},
		Tags:     []string{},
	}
}
