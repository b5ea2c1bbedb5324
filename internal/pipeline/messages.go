package pipeline

const (
	messageStepTranscribe = "[1/3] 오디오를 녹취록으로 변환 중..."
	messageStepReport     = "[2/3] 범용 분석 프롬프트로 보고서 생성 중..."
	messageStepSave       = "[3/3] 파일 저장 중..."

	messageDiscordReportTitleFormat = ":page_facing_up: **%s 분석 보고서** (%s)"
)

func reportTypeLabel(reportType string) string {
	switch reportType {
	case "meeting":
		return "회의/워크숍"
	case "interview":
		return "1:1 인터뷰"
	default:
		return reportType
	}
}
