package app

// User-facing notification texts.
const (
	MsgQuoteAdded     = "Quote added successfully!"
	MsgMissingFields  = "Please enter both quote text and category."
	MsgNoQuotes       = "No quotes available. Add some quotes!"
	MsgImported       = "Quotes imported successfully!"
	MsgImportRejected = "Import failed: the file is not a valid quote list."
	MsgSynced         = "Quotes synced with server."
	MsgSyncDegraded   = "Could not reach the quote server. Showing local quotes only."
	MsgSyncFailed     = "Sync failed: local quotes could not be saved."
	MsgPushed         = "Local quotes pushed to server."
)
