package extract

import (
	"regexp"
	"strings"
)

// Fallback patterns for diplomas (ijazah). Covers a strict subset of the
// LLM schema: the labels that reliably survive OCR on Indonesian
// school/university certificates.
var (
	reIjazahNomor    = regexp.MustCompile(`(?i)(?:NOMOR|NO\.?)\s*(?:IJAZAH|SERI)?\s*[:\-]?\s*([A-Z0-9][A-Z0-9./\-]{4,})`)
	reIjazahNama     = regexp.MustCompile(`(?i)NAMA\s*(?:LENGKAP)?\s*[:\-]?\s*([^\n]+)`)
	reIjazahTempat   = regexp.MustCompile(`(?i)TEMPAT(?:\s*(?:DAN|/)\s*(?:TANGGAL|TGL\.?))?\s*LAHIR\s*[:\-]?\s*([^\n]+)`)
	reIjazahSekolah  = regexp.MustCompile(`(?i)((?:UNIVERSITAS|INSTITUT|POLITEKNIK|SEKOLAH TINGGI|SEKOLAH MENENGAH|SMK|SMA|SMP)[^\n]*)`)
	reIjazahLulusCtx = regexp.MustCompile(`(?i)(?:LULUS|TAHUN\s+PELAJARAN|TAHUN\s+AKADEMIK)\D{0,40}((?:19|20)\d{2})`)
	reYear           = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

	jenjangKeywords = []struct {
		keyword string
		level   string
	}{
		{"SEKOLAH DASAR", "SD"},
		{"SEKOLAH MENENGAH PERTAMA", "SMP"},
		{"SEKOLAH MENENGAH ATAS", "SMA"},
		{"SEKOLAH MENENGAH KEJURUAN", "SMK"},
		{"SARJANA", "S1"},
		{"MAGISTER", "S2"},
		{"DOKTOR", "S3"},
		{"DIPLOMA", "D3"},
	}
)

// ExtractIjazahFields is the regex fallback when the LLM path fails or
// returns nothing parseable.
func ExtractIjazahFields(rawText string) map[string]any {
	data := map[string]any{}

	setLine(data, "nomor_ijazah", reIjazahNomor, rawText)
	setLine(data, "nama", reIjazahNama, rawText)
	setLine(data, "nama_sekolah", reIjazahSekolah, rawText)

	// "Tempat/Tgl Lahir: Bandung, 12 Mei 2002" carries both fields.
	if m := reIjazahTempat.FindStringSubmatch(rawText); m != nil {
		line := strings.TrimSpace(m[1])
		if d := normalizeDate(line); d != "" {
			data["tanggal_lahir"] = d
		}
		if place, _, ok := strings.Cut(line, ","); ok {
			place = strings.TrimSpace(place)
			if place != "" {
				data["tempat_lahir"] = place
			}
		} else if line != "" && !strings.ContainsAny(line, "0123456789") {
			data["tempat_lahir"] = line
		}
	}

	if m := reIjazahLulusCtx.FindStringSubmatch(rawText); m != nil {
		data["tahun_lulus"] = m[1]
	} else if years := reYear.FindAllString(rawText, -1); len(years) > 0 {
		// Graduation year is the latest year printed on the certificate.
		max := years[0]
		for _, y := range years[1:] {
			if y > max {
				max = y
			}
		}
		data["tahun_lulus"] = max
	}

	upper := strings.ToUpper(rawText)
	for _, j := range jenjangKeywords {
		if strings.Contains(upper, j.keyword) {
			data["jenjang"] = j.level
			break
		}
	}

	return data
}
