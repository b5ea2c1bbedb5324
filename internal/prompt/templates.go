package prompt

const (
	// NoneMarker replaces quantitative data when none was supplied.
	NoneMarker = "없음"

	promptTitle = "## 📌 Universal Interview / Meeting Analysis Prompt"

	transcriptStartMarker = "INPUT_TRANSCRIPT_START"
	transcriptEndMarker   = "INPUT_TRANSCRIPT_END"
)

const meetingTemplate = `
#### [회의/워크숍 분석 보고서]
1. 회의 개요
2. 데이터 기반 동향 분석
3. 주요 발견사항 및 심층 분석
4. 실행 가능한 가설
5. 실행 계획 (RASCI 매트릭스)
6. 사고체인·상식 검증 요약
7. 부록
`

const interviewTemplate = `
#### [1:1 인터뷰 분석 보고서]
1. 요약 (Executive Summary)
2. 코드별 분석 결과
3. 주요 발견사항
4. 종합 인사이트
5. 리스크 및 기회
6. 사고체인·상식 검증 요약
7. 부록
`

const executionPipeline = `- STAGE 1. 발화 단위 분리 및 코드 매핑 (Pain/Gain/Action), 감성 흐름 분석, 개체/관계 분석
- STAGE 2. SWOT 분석, RASCI 매트릭스 초안 생성
- STAGE 3. 실행 가능한 가설 2~3개 도출, 모든 인사이트는 인용/데이터 근거 포함`

const writingGuidelines = `- 출력은 반드시 한국어로 작성
- Privacy_Anonymize=true면 이름/개인정보를 비식별 처리
- Confidence_Labeling=true면 핵심 주장마다 Evidence Strength(A/B/C) 라벨 명시
- 표는 Markdown 표 형식으로 작성
- 발언 인용은 타임스탬프를 포함해 제시`
