package domain

// NewsletterSignup описывает подписку на рассылку
type NewsletterSignup struct {
	Email string
}

// ContactMessage описывает сообщение из формы обратной связи
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// CartItem описывает позицию корзины
type CartItem struct {
	ID       string
	Name     string
	Price    float64
	Size     *string
	Quantity int
	Image    *string
}

func NewNewsletterSignup(email string) *NewsletterSignup {
	return &NewsletterSignup{Email: email}
}

func NewContactMessage(name, email, message string) *ContactMessage {
	return &ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
}
