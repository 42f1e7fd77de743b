package http

import (
	"net/http"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

type StorefrontHandler struct {
	storefrontUsecase usecase.StorefrontUC
	logger            logger.Logger
}

func NewStorefrontHandler(storefrontUsecase usecase.StorefrontUC, logger logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{storefrontUsecase: storefrontUsecase, logger: logger}
}

// newsletter
//
//	@Summary	Подписка на рассылку
//	@Tags		storefront
//	@Accept		json
//	@Produce	json
//	@Param		body	body		newsletterRequest	true	"Email подписчика"
//	@Success	200		{object}	NewsletterResponse
//	@Failure	400		{object}	ErrorResponse	"Тело не является JSON"
//	@Failure	422		{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/newsletter [post]
func (s *StorefrontHandler) newsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		s.logger.Warnf("%s %s: %s", r.Method, r.URL.Path, err.Error())
		WriteError(w, err)
		return
	}

	res := s.storefrontUsecase.Subscribe(r.Context(), domain.NewNewsletterSignup(req.Email))
	WriteSuccess(w, http.StatusOK, toNewsletterResponse(res))
}

// contact
//
//	@Summary	Сообщение из формы обратной связи
//	@Tags		storefront
//	@Accept		json
//	@Produce	json
//	@Param		body	body		contactRequest	true	"Сообщение"
//	@Success	200		{object}	ContactResponse
//	@Failure	400		{object}	ErrorResponse	"Тело не является JSON"
//	@Failure	422		{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/contact [post]
func (s *StorefrontHandler) contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		s.logger.Warnf("%s %s: %s", r.Method, r.URL.Path, err.Error())
		WriteError(w, err)
		return
	}

	res := s.storefrontUsecase.Contact(r.Context(), domain.NewContactMessage(req.Name, req.Email, req.Message))
	WriteSuccess(w, http.StatusOK, toContactResponse(res))
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Считает сумму корзины: Σ price × quantity с точностью до двух знаков
//	@Tags			storefront
//	@Accept			json
//	@Produce		json
//	@Param			body	body		checkoutRequest	true	"Корзина"
//	@Success		200		{object}	CheckoutResponse
//	@Failure		400		{object}	ErrorResponse	"Тело не является JSON"
//	@Failure		422		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/checkout [post]
func (s *StorefrontHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		s.logger.Warnf("%s %s: %s", r.Method, r.URL.Path, err.Error())
		WriteError(w, err)
		return
	}

	res := s.storefrontUsecase.Checkout(r.Context(), req.toUseCase())
	WriteSuccess(w, http.StatusOK, toCheckoutResponse(res))
}
