package constvars

const (
	RegexNumeric   = `^\d+$`
	RegexDateISO   = `^\d{4}-\d{2}-\d{2}$`
	RegexClockHHMM = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexTaxIDCPF  = `^\d{11}$`
)
