// Package prompt renders the analysis prompt sent to the report generator.
// Build is pure: identical parameters always produce the same bytes.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/foxseedlab/nokchwi/internal/config"
)

type Params struct {
	Transcript         string
	ReportType         config.ReportType
	Company            string
	Language           string
	DetailLevel        config.DetailLevel
	Anonymize          bool
	ConfidenceLabel    bool
	PreBriefingContext string
	QuantData          json.RawMessage
}

func ParamsFromRun(run config.RunConfig, transcript string) Params {
	return Params{
		Transcript:         transcript,
		ReportType:         run.ReportType,
		Company:            run.Company,
		Language:           run.Language,
		DetailLevel:        run.DetailLevel,
		Anonymize:          run.Anonymize,
		ConfidenceLabel:    run.ConfidenceLabel,
		PreBriefingContext: run.PreBriefingContext,
		QuantData:          run.QuantData,
	}
}

func Build(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", promptTitle)

	b.WriteString("### 1. PARAMETERS\n")
	fmt.Fprintf(&b, "- Company_Name: \"%s\"\n", p.Company)
	fmt.Fprintf(&b, "- Language_Output: \"%s\"\n", p.Language)
	fmt.Fprintf(&b, "- Output_Detail_Level: \"%s\"\n", p.DetailLevel)
	fmt.Fprintf(&b, "- Privacy_Anonymize: %s\n", strconv.FormatBool(p.Anonymize))
	fmt.Fprintf(&b, "- Confidence_Labeling: %s\n", strconv.FormatBool(p.ConfidenceLabel))
	fmt.Fprintf(&b, "- Pre_briefing_Context: \"%s\"\n", p.PreBriefingContext)
	b.WriteString("- Quantitative_Data:\n")
	fmt.Fprintf(&b, "%s\n\n", QuantitativeText(p.QuantData))

	b.WriteString("### 2. INPUT TRANSCRIPT\n")
	fmt.Fprintf(&b, "%s\n<<<\n%s\n>>>\n%s\n\n", transcriptStartMarker, p.Transcript, transcriptEndMarker)

	b.WriteString("### 3. EXECUTION PIPELINE & ANALYSIS FRAMEWORKS\n")
	fmt.Fprintf(&b, "%s\n\n", executionPipeline)

	b.WriteString("### 4. FINAL OUTPUT TEMPLATES\n")
	fmt.Fprintf(&b, "%s\n\n", selectTemplate(p.ReportType))

	b.WriteString("### 작성 지침\n")
	b.WriteString(writingGuidelines)

	return strings.TrimSpace(b.String())
}

// selectTemplate picks the meeting outline for ReportTypeMeeting and the
// interview outline for anything else.
func selectTemplate(rt config.ReportType) string {
	if rt == config.ReportTypeMeeting {
		return meetingTemplate
	}
	return interviewTemplate
}

// QuantitativeText re-encodes the document with two-space indentation. Key
// order and number literals are kept as written; string escapes such as
// \uXXXX are decoded so non-ASCII text reaches the prompt as characters.
// Missing or empty documents yield NoneMarker.
func QuantitativeText(raw json.RawMessage) string {
	if isEmptyDocument(raw) {
		return NoneMarker
	}
	compact, err := reencodeJSON(raw)
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return out.String()
}

func reencodeJSON(raw json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var buf bytes.Buffer
	if err := writeJSONValue(dec, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONValue(dec *json.Decoder, buf *bytes.Buffer) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case json.Delim:
		open, closing := byte('['), byte(']')
		if t == '{' {
			open, closing = '{', '}'
		}
		buf.WriteByte(open)
		for first := true; dec.More(); first = false {
			if !first {
				buf.WriteByte(',')
			}
			if t == '{' {
				key, err := dec.Token()
				if err != nil {
					return err
				}
				if err := writeJSONString(buf, key.(string)); err != nil {
					return err
				}
				buf.WriteByte(':')
			}
			if err := writeJSONValue(dec, buf); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
		buf.WriteByte(closing)
	case string:
		return writeJSONString(buf, t)
	case json.Number:
		buf.WriteString(t.String())
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case nil:
		buf.WriteString("null")
	default:
		return fmt.Errorf("unexpected json token %T", tok)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(b.Bytes(), "\n"))
	return nil
}

func isEmptyDocument(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}
