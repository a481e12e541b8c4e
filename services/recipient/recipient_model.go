package recipient

// AccountType tells the two recipient identifier shapes apart.
type AccountType string

const (
	AccountTypeAlias   AccountType = "alias"
	AccountTypeAccount AccountType = "account"
)

// Recipient is a known payee from the directory.
type Recipient struct {
	Identifier string      `json:"identifier"`
	Type       AccountType `json:"accountType"`
	HolderName string      `json:"holderName"`
}
