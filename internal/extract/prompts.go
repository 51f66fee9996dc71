package extract

import (
	"fmt"
	"strings"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/classify"
)

// Field is one entry in a per-document-type extraction schema. All values
// are requested as strings so leading zeros and local number formatting
// survive; dates are requested as yyyy-MM-dd but not validated on return.
type Field struct {
	Name        string
	Description string
}

var ijazahFields = []Field{
	{"nomor_ijazah", "certificate number as printed"},
	{"nama", "full name of the holder"},
	{"tempat_lahir", "place of birth"},
	{"tanggal_lahir", "date of birth, yyyy-MM-dd"},
	{"nama_sekolah", "school or university name"},
	{"jenjang", "education level (SD/SMP/SMA/SMK/D3/S1/S2/S3)"},
	{"jurusan", "major"},
	{"program_studi", "study program"},
	{"fakultas", "faculty, if any"},
	{"tahun_lulus", "graduation year"},
	{"tanggal_lulus", "graduation date, yyyy-MM-dd"},
	{"nomor_peserta", "exam participant number"},
	{"nisn_nim", "student identification number (NISN or NIM)"},
	{"gelar", "degree awarded"},
	{"ipk", "GPA as printed"},
	{"akreditasi", "accreditation grade"},
	{"nomor_seri", "serial number of the blank"},
	{"nama_pejabat", "principal or rector name"},
	{"tanggal_terbit", "issue date, yyyy-MM-dd"},
}

// schemaFields lists the bespoke field set for each document type on the
// generic extraction path. IJAZAH appears here too so the generic path
// still works when forced by a hint after its dedicated path failed.
var schemaFields = map[classify.DocumentType][]Field{
	classify.KTP: {
		{"nik", "16-digit NIK, keep leading zeros"},
		{"nama", "full name"},
		{"tempat_lahir", "place of birth"},
		{"tanggal_lahir", "date of birth, yyyy-MM-dd"},
		{"jenis_kelamin", "LAKI-LAKI or PEREMPUAN"},
		{"golongan_darah", "blood type"},
		{"alamat", "street address"},
		{"rt_rw", "RT/RW, e.g. 001/002"},
		{"kelurahan_desa", "village"},
		{"kecamatan", "district"},
		{"agama", "religion"},
		{"status_perkawinan", "marital status"},
		{"pekerjaan", "occupation"},
		{"kewarganegaraan", "citizenship"},
		{"berlaku_hingga", "valid-until value, often SEUMUR HIDUP"},
	},
	classify.KK: {
		{"nomor_kk", "16-digit family register number"},
		{"kepala_keluarga", "head of family name"},
		{"alamat", "address"},
		{"rt_rw", "RT/RW"},
		{"kelurahan_desa", "village"},
		{"kecamatan", "district"},
		{"kabupaten_kota", "regency or city"},
		{"provinsi", "province"},
		{"kode_pos", "postal code"},
		{"anggota", "array of family members, each with nama, nik, hubungan"},
	},
	classify.Ijazah: ijazahFields,
	classify.NPWP: {
		{"npwp", "tax number with punctuation as printed"},
		{"nama", "taxpayer name"},
		{"nik", "NIK if printed"},
		{"alamat", "registered address"},
		{"kpp", "issuing tax office"},
		{"tanggal_terdaftar", "registration date, yyyy-MM-dd"},
	},
	classify.SIM: {
		{"nomor_sim", "license number"},
		{"nama", "holder name"},
		{"tempat_tanggal_lahir", "place and date of birth"},
		{"golongan", "license class (A/B1/B2/C/D)"},
		{"alamat", "address"},
		{"pekerjaan", "occupation"},
		{"berlaku_sampai", "expiry date, yyyy-MM-dd"},
	},
	classify.STNK: {
		{"nomor_polisi", "plate number"},
		{"nama_pemilik", "owner name"},
		{"alamat", "owner address"},
		{"merk", "vehicle make"},
		{"tipe", "vehicle type"},
		{"jenis", "vehicle category"},
		{"model", "model"},
		{"tahun_pembuatan", "manufacturing year"},
		{"warna", "color"},
		{"nomor_rangka", "chassis number"},
		{"nomor_mesin", "engine number"},
		{"bahan_bakar", "fuel type"},
		{"berlaku_sampai", "valid-until date, yyyy-MM-dd"},
	},
	classify.PajakKendaraan: {
		{"nomor_polisi", "plate number"},
		{"nama_pemilik", "owner name"},
		{"merk_tipe", "make and type"},
		{"pkb_pokok", "principal vehicle tax amount"},
		{"swdkllj", "mandatory accident fund contribution"},
		{"total", "total amount due"},
		{"jatuh_tempo", "due date, yyyy-MM-dd"},
	},
	classify.AWB: {
		{"nomor_awb", "air waybill / tracking number"},
		{"pengirim", "sender name"},
		{"alamat_pengirim", "sender address"},
		{"penerima", "recipient name"},
		{"alamat_penerima", "recipient address"},
		{"layanan", "service level"},
		{"berat", "weight as printed"},
		{"biaya", "shipping cost"},
		{"tanggal_kirim", "ship date, yyyy-MM-dd"},
	},
	classify.Invoice: {
		{"nomor_invoice", "invoice number"},
		{"tanggal", "invoice date, yyyy-MM-dd"},
		{"nama_vendor", "seller name"},
		{"nama_pelanggan", "buyer name"},
		{"items", "array of line items, each with deskripsi, qty, harga"},
		{"subtotal", "subtotal amount"},
		{"pajak", "tax amount"},
		{"total", "total amount"},
		{"jatuh_tempo", "payment due date, yyyy-MM-dd"},
	},
	classify.CV: {
		{"nama", "candidate name"},
		{"email", "email address"},
		{"telepon", "phone number"},
		{"alamat", "address"},
		{"pendidikan", "array of education entries"},
		{"pengalaman_kerja", "array of work experience entries"},
		{"keahlian", "array of skills"},
	},
	classify.BPJS: {
		{"nomor_kartu", "13-digit card number"},
		{"nama", "member name"},
		{"nik", "NIK if printed"},
		{"tanggal_lahir", "date of birth, yyyy-MM-dd"},
		{"faskes_tingkat_1", "first-level health facility"},
		{"kelas_rawat", "care class"},
	},
	classify.AktaLahir: {
		{"nomor_akta", "certificate number"},
		{"nama", "child name"},
		{"tempat_lahir", "place of birth"},
		{"tanggal_lahir", "date of birth, yyyy-MM-dd"},
		{"jenis_kelamin", "sex"},
		{"nama_ayah", "father name"},
		{"nama_ibu", "mother name"},
		{"tanggal_terbit", "issue date, yyyy-MM-dd"},
	},
	classify.SuratKeterangan: {
		{"nomor_surat", "letter number"},
		{"perihal", "subject"},
		{"nama", "subject person name"},
		{"instansi", "issuing institution"},
		{"tanggal_terbit", "issue date, yyyy-MM-dd"},
	},
}

const genericInstruction = `Extract anything identifiable from the document: names, numbers, dates, addresses, amounts. Use lowercase snake_case keys in Indonesian where natural.`

// buildSchemaPrompt renders a field list into the JSON-shape block the
// model is asked to fill in.
func buildSchemaPrompt(fields []Field) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, f := range fields {
		fmt.Fprintf(&sb, `  "%s": <string or null> // %s`, f.Name, f.Description)
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func systemPrompt(docType classify.DocumentType) string {
	fields, ok := schemaFields[docType]
	if !ok {
		return fmt.Sprintf(`You extract structured data from OCR text of documents. %s

Respond with ONLY a valid JSON object. Keep every value a string (or an array of objects with string values). Use null for fields you cannot find. Format dates as yyyy-MM-dd. No markdown, no explanation.`, genericInstruction)
	}

	return fmt.Sprintf(`You extract structured data from OCR text of Indonesian %s documents. Respond with ONLY a valid JSON object matching this schema:

%s

Keep every value a string (or an array where noted). Keep leading zeros. Use null for fields you cannot find. Format dates as yyyy-MM-dd. No markdown, no explanation.`, docType, buildSchemaPrompt(fields))
}
