package shopify

// Attribute keys carrying delivery details on an order. Matched by exact
// string against the checkout widget's attribute names.
const (
	AttrDeliveryDate       = "Delivery Date"
	AttrDeliveryTime       = "Delivery Time"
	AttrDeliveryPostalCode = "Delivery Postal Code"
)

// Attribute is a single key/value custom attribute attached to an order.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Order is one storefront order with its checkout custom attributes.
type Order struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	CustomAttributes []Attribute `json:"customAttributes"`
}

// Attribute returns the value of the first attribute with the given key.
func (o Order) Attribute(key string) (string, bool) {
	for _, attr := range o.CustomAttributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}
