package constant

const (
	// RecordsStreamName is the JetStream stream holding record change events.
	RecordsStreamName = "mutabaah-records"

	RecordsSubjectUpserted    = "RECORDS.UPSERTED"
	RecordsSubjectRegenerated = "RECORDS.REGENERATED"

	GeneratorLockKeyPrefix = "mutabaah:generator:user:"

	// LimiterKeyPrefix namespaces the rate limiter counters in Redis.
	LimiterKeyPrefix = "mutabaah:limiter"
)
