package converter

// ProductDocument представляет документ коллекции товаров в MongoDB.
// Поля-указатели отличают отсутствующее поле от нулевого значения.
type ProductDocument struct {
	MongoID     any      `bson:"_id,omitempty"`
	ID          *string  `bson:"id,omitempty"`
	Name        *string  `bson:"name,omitempty"`
	Price       *float64 `bson:"price,omitempty"`
	Gender      *string  `bson:"gender,omitempty"`
	Category    *string  `bson:"category,omitempty"`
	Sizes       []string `bson:"sizes"`
	Images      []string `bson:"images"`
	Description *string  `bson:"description,omitempty"`
	Tags        []string `bson:"tags"`
	Featured    *bool    `bson:"featured,omitempty"`
	NewArrival  *bool    `bson:"new_arrival,omitempty"`
}
