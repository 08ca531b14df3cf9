package logger

// Standard field key constants for structured logging.
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldFingerprint = "fingerprint"
	FieldProvider    = "provider"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
	FieldCartID      = "cart_id"
	FieldCustomerID  = "customer_id"
	FieldProductID   = "product_id"
	FieldEntryState  = "entry_state"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Info("mutation applied", logger.Fields(logger.FieldOperation, "addCartItem"))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
