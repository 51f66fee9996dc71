package extract

import (
	"regexp"
	"strings"
)

// Literal label patterns for the family register (Kartu Keluarga). This is
// the non-LLM fallback: best effort, extracts only what the printed labels
// give away.
var (
	reKKNumber      = regexp.MustCompile(`(?i)(?:NOMOR|NO\.?)\s*KK\s*[:\-]?\s*(\d{16})`)
	reKKNumberBare  = regexp.MustCompile(`\b(\d{16})\b`)
	reKKKepala      = regexp.MustCompile(`(?i)(?:NAMA\s+)?KEPALA\s+KELUARGA\s*[:\-]?\s*([^\n]+)`)
	reKKAlamat      = regexp.MustCompile(`(?i)ALAMAT\s*[:\-]?\s*([^\n]+)`)
	reKKRTRW        = regexp.MustCompile(`(?i)RT\s*/?\s*RW\s*[:\-]?\s*(\d{1,3}\s*/\s*\d{1,3})`)
	reKKKodePos     = regexp.MustCompile(`(?i)KODE\s+POS\s*[:\-]?\s*(\d{5})`)
	reKKKelurahan   = regexp.MustCompile(`(?i)(?:KELURAHAN|KEL\.?\s*/?\s*DESA|DESA)\s*[:\-]?\s*([^\n]+)`)
	reKKKecamatan   = regexp.MustCompile(`(?i)KECAMATAN\s*[:\-]?\s*([^\n]+)`)
	reKKKabupaten   = regexp.MustCompile(`(?i)(?:KABUPATEN|KOTA)\s*[:\-]?\s*([^\n]+)`)
	reKKProvinsi    = regexp.MustCompile(`(?i)PROVINSI\s*[:\-]?\s*([^\n]+)`)
	reKKDikeluarkan = regexp.MustCompile(`(?i)(?:DIKELUARKAN\s+(?:TANGGAL|PADA)|TANGGAL\s+DIKELUARKAN)\s*[:\-]?\s*([^\n]+)`)
)

// ExtractKKFields pulls family-register fields out of raw OCR text with
// label regexes. Missing fields are simply absent from the result.
func ExtractKKFields(rawText string) map[string]any {
	data := map[string]any{}

	if m := reKKNumber.FindStringSubmatch(rawText); m != nil {
		data["nomor_kk"] = m[1]
	} else if strings.Contains(strings.ToUpper(rawText), "KARTU KELUARGA") {
		// The 16-digit register number often sits on its own line under
		// the title, with no label surviving OCR.
		if m := reKKNumberBare.FindStringSubmatch(rawText); m != nil {
			data["nomor_kk"] = m[1]
		}
	}

	setLine(data, "kepala_keluarga", reKKKepala, rawText)
	setLine(data, "alamat", reKKAlamat, rawText)
	setLine(data, "rt_rw", reKKRTRW, rawText)
	setLine(data, "kode_pos", reKKKodePos, rawText)
	setLine(data, "kelurahan_desa", reKKKelurahan, rawText)
	setLine(data, "kecamatan", reKKKecamatan, rawText)
	setLine(data, "kabupaten_kota", reKKKabupaten, rawText)
	setLine(data, "provinsi", reKKProvinsi, rawText)

	if m := reKKDikeluarkan.FindStringSubmatch(rawText); m != nil {
		if d := normalizeDate(m[1]); d != "" {
			data["tanggal_dikeluarkan"] = d
		}
	}

	return data
}

func setLine(data map[string]any, key string, re *regexp.Regexp, text string) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return
	}
	v := strings.TrimSpace(strings.Trim(m[1], " :.-"))
	if v != "" {
		data[key] = v
	}
}
