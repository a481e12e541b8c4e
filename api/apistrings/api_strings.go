package apistrings

const (
	/// Basic User Related Strings
	UserNotFound       = "user or account does not exist"
	IncorrectEmailPass = "incorrect email or password"
	InvalidLoginInput  = "please enter a valid email and password"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Card Related Strings
	UserNoCards = "user does not have any cards"

	/// Movement Related Strings
	InvalidMovementFilter = "check 'type', 'currency' or 'issuer' filters, invalid request"

	/// Transfer Related Strings
	InvalidTransferInput  = "check 'recipientIdentifier', 'amount', 'currency' or 'cardId' keys, invalid request"
	InvalidRecipientInput = "check 'identifier' key, invalid request"
	CurrencyNotSupported  = "entered currency is not supported"
	CardNotFound          = "card not found or does not belong to user"
	InsufficientBalance   = "insufficient balance"
	TransferCompleted     = "transfer completed successfully"
	RecipientValidated    = "recipient validated successfully"
)
