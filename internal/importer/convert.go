package importer

// Convert transforms a validated ImportSchema into event records ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema) []EventRecord {
	records := make([]EventRecord, 0, len(schema.Events))
	for _, e := range schema.Events {
		rec := EventRecord{
			UID:       e.UID,
			Title:     e.Title,
			Location:  e.Location,
			Date:      e.Date,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Type:      e.Type,
			ListID:    e.ListID,
			Recurring: e.Recurring,
		}
		if e.Recurring {
			rec.RepeatType = e.RepeatType
			if e.RepeatUntil != nil && *e.RepeatUntil != "" {
				until := *e.RepeatUntil
				rec.RepeatUntil = &until
			}
		}
		records = append(records, rec)
	}
	return records
}
