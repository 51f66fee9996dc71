// Package classify assigns an Indonesian document type to raw OCR text
// using ordered keyword rules. It is a heuristic classifier: first match
// wins, no confidence score, and an externally supplied hint bypasses the
// text entirely.
package classify

import "strings"

// DocumentType is the closed set of recognized document labels.
type DocumentType string

const (
	KTP             DocumentType = "KTP"
	KK              DocumentType = "KK"
	Ijazah          DocumentType = "IJAZAH"
	NPWP            DocumentType = "NPWP"
	SIM             DocumentType = "SIM"
	STNK            DocumentType = "STNK"
	PajakKendaraan  DocumentType = "PAJAK_KENDARAAN"
	AWB             DocumentType = "AWB"
	Invoice         DocumentType = "INVOICE"
	CV              DocumentType = "CV"
	BPJS            DocumentType = "BPJS"
	AktaLahir       DocumentType = "AKTA_LAHIR"
	SuratKeterangan DocumentType = "SURAT_KETERANGAN"
	Unknown         DocumentType = "UNKNOWN"
)

// acceptedHints is the set of hint values honored verbatim. UNKNOWN is
// deliberately absent: a caller cannot force the no-match label.
var acceptedHints = map[DocumentType]bool{
	KTP: true, KK: true, Ijazah: true, NPWP: true, SIM: true, STNK: true,
	PajakKendaraan: true, AWB: true, Invoice: true, CV: true, BPJS: true,
	AktaLahir: true, SuratKeterangan: true,
}

type rule struct {
	docType DocumentType
	match   func(text string) bool
}

func anyOf(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

func allOf(matchers ...func(string) bool) func(string) bool {
	return func(text string) bool {
		for _, m := range matchers {
			if !m(text) {
				return false
			}
		}
		return true
	}
}

// Rule order is intentional: KK before KTP (a family register lists NIK
// columns), STNK before PAJAK_KENDARAAN, and SURAT_KETERANGAN last because
// the phrase appears inside many other documents.
var rules = []rule{
	{KK, anyOf("KARTU KELUARGA", "NOMOR KK", "NO. KK", "NO KK")},
	{KTP, allOf(
		anyOf("NIK", "NOMOR INDUK KEPENDUDUKAN"),
		anyOf("TEMPAT/TGL LAHIR", "TEMPAT LAHIR", "TGL LAHIR", "GOL. DARAH", "GOL DARAH"),
	)},
	{Ijazah, anyOf("IJAZAH", "STTB", "SURAT TANDA TAMAT BELAJAR")},
	{NPWP, anyOf("NPWP", "NOMOR POKOK WAJIB PAJAK")},
	{SIM, anyOf("SURAT IZIN MENGEMUDI", "DRIVING LICENSE")},
	{STNK, anyOf("SURAT TANDA NOMOR KENDARAAN", "STNK")},
	{PajakKendaraan, anyOf("PAJAK KENDARAAN", "PKB", "SWDKLLJ")},
	{AWB, anyOf("AIR WAYBILL", "AIRWAY BILL", "AWB", "NOMOR RESI", "NO. RESI")},
	{Invoice, anyOf("INVOICE", "FAKTUR", "TAGIHAN")},
	{CV, anyOf("CURRICULUM VITAE", "DAFTAR RIWAYAT HIDUP", "RIWAYAT PEKERJAAN")},
	{BPJS, anyOf("BPJS", "KARTU INDONESIA SEHAT", "JAMINAN KESEHATAN NASIONAL")},
	{AktaLahir, anyOf("AKTA KELAHIRAN", "KUTIPAN AKTA KELAHIRAN")},
	{SuratKeterangan, anyOf("SURAT KETERANGAN")},
}

// Classify derives the document type from raw OCR text and an optional
// hint. A hint in the accepted set wins regardless of text content. The
// function is pure: identical inputs always yield the same label.
func Classify(rawText, hint string) DocumentType {
	if h := DocumentType(strings.ToUpper(strings.TrimSpace(hint))); acceptedHints[h] {
		return h
	}

	text := strings.ToUpper(rawText)
	for _, r := range rules {
		if r.match(text) {
			return r.docType
		}
	}
	return Unknown
}

// All lists every label, UNKNOWN last.
func All() []DocumentType {
	return []DocumentType{
		KTP, KK, Ijazah, NPWP, SIM, STNK, PajakKendaraan,
		AWB, Invoice, CV, BPJS, AktaLahir, SuratKeterangan, Unknown,
	}
}
