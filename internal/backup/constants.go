package backup

// ==================== Error Messages ====================

const (
	ErrMsgReadExportFailedFmt  = "failed to read account export %s: %w"
	ErrMsgSchemaFailedFmt      = "account export rejected: %v: %w"
	ErrMsgDecodeFailedFmt      = "account export could not be decoded: %v: %w"
	ErrMsgBadInventoryFmt      = "account %s: inventory: %v: %w"
	ErrMsgBadCharactersFmt     = "account %s: characters: %v: %w"
	ErrMsgWriteExportFailedFmt = "failed to write account export: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgExported         = "Accounts exported"
	LogMsgImported         = "Accounts imported"
	LogMsgImportRejected   = "Account import rejected"
	LogMsgImportFileAbsent = "Account export file not found, nothing imported"
)
