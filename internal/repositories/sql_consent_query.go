package repositories

// query to consent database
var (
	queryConsentCreate = `
		INSERT INTO consent(
			"consent_id", "name", "status", "created_at"
		)
		VALUES(
			$1, $2, $3, now()
		)
		RETURNING "id", "consent_id", "name", "status", "created_at";
	`

	queryConsentList = `SELECT "id", "consent_id", "name", "status", "created_at" FROM consent ORDER BY "created_at" DESC;`
)
