package connector

import "github.com/shaiso/dcclient/internal/dates"

// Endpoints Data Connector (относительно базового URL).
const (
	EndpointVersion     = "/GetWebServiceVersion"
	EndpointState       = "/GetWebServiceState"
	EndpointPatientInfo = "/PatientInfo"
)

// PatientInfoRequest — запрос сводки неотложной информации о пациенте.
type PatientInfoRequest struct {
	RodneCislo string          `json:"RodneCislo"`
	DateFrom   dates.Timestamp `json:"DateFrom"`
	DateTo     dates.Timestamp `json:"DateTo"`
}

// NewPatientInfoRequest строит запрос по идентификатору пациента и интервалу.
func NewPatientInfoRequest(rc string, r dates.Range) PatientInfoRequest {
	return PatientInfoRequest{
		RodneCislo: rc,
		DateFrom:   dates.Timestamp(r.From),
		DateTo:     dates.Timestamp(r.To),
	}
}

// Response — ответ сервиса.
type Response struct {
	StatusCode int
	RequestID  string

	// Body — тело ответа без изменений.
	Body string

	// Accepted — код ответа вне 2xx, но входит в Config.AcceptCodes.
	// Body в этом случае пустой.
	Accepted bool
}
