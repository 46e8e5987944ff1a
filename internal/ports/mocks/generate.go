//go:generate mockgen -source=../payment_gateway.go     -destination=./mock_payment_gateway.go     -package=mocks
//go:generate mockgen -source=../reservation_gateway.go -destination=./mock_reservation_gateway.go -package=mocks
//go:generate mockgen -source=../purchase_validator.go  -destination=./mock_purchase_validator.go  -package=mocks
//go:generate mockgen -source=../purchase_processor.go  -destination=./mock_purchase_processor.go  -package=mocks
//go:generate mockgen -source=../receipt_cache.go       -destination=./mock_receipt_cache.go       -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks

package mocks
