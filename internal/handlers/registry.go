package handlers

// AppHandlers - все HTTP-хэндлеры приложения, собираются в app
type AppHandlers struct {
	UserHandler     *UserHandler
	WorkInfoHandler *WorkInfoHandler
	ContentHandler  *ContentHandler
	PaymentHandler  *PaymentHandler
}
