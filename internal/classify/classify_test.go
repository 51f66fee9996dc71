package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want DocumentType
	}{
		{"ktp", "PROVINSI JAWA BARAT\nNIK: 3204110101900001\nTempat/Tgl Lahir: BANDUNG, 01-01-1990", KTP},
		{"kk", "KARTU KELUARGA\nNo. 3204112233445566", KK},
		{"ijazah", "IJAZAH\nSEKOLAH MENENGAH ATAS\ndiberikan kepada", Ijazah},
		{"npwp", "NOMOR POKOK WAJIB PAJAK\n09.254.294.3-407.000", NPWP},
		{"sim", "SURAT IZIN MENGEMUDI\nINDONESIAN DRIVING LICENSE", SIM},
		{"stnk", "SURAT TANDA NOMOR KENDARAAN BERMOTOR", STNK},
		{"pajak kendaraan", "TANDA BUKTI PELUNASAN PAJAK KENDARAAN SWDKLLJ", PajakKendaraan},
		{"awb", "AIR WAYBILL\nJNE EXPRESS", AWB},
		{"invoice", "INVOICE No. INV-2024-0012\nTotal: Rp 1.500.000", Invoice},
		{"cv", "DAFTAR RIWAYAT HIDUP\nPendidikan: S1 Informatika", CV},
		{"bpjs", "BPJS KESEHATAN\nNomor Kartu 0001234567890", BPJS},
		{"akta lahir", "KUTIPAN AKTA KELAHIRAN No. 1234/2001", AktaLahir},
		{"surat keterangan", "SURAT KETERANGAN KERJA", SuratKeterangan},
		{"no match", "lorem ipsum dolor sit amet", Unknown},
		{"empty text", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text, ""))
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, KK, Classify("kartu keluarga", ""))
	assert.Equal(t, Invoice, Classify("Invoice #42", ""))
}

func TestClassifyPriorityKKBeforeKTP(t *testing.T) {
	// A family register lists NIK and birth columns for every member; the
	// KK rule must win over the KTP rule.
	text := "KARTU KELUARGA\nNIK: 3204110101900001\nTEMPAT LAHIR: BANDUNG"
	assert.Equal(t, KK, Classify(text, ""))
}

func TestClassifyHintWins(t *testing.T) {
	// Hint overrides even strong contrary signals in the text.
	text := "KARTU KELUARGA\nNOMOR KK: 1234567890123456"
	assert.Equal(t, KTP, Classify(text, "KTP"))
	assert.Equal(t, KTP, Classify(text, "ktp"))
	assert.Equal(t, KTP, Classify(text, "  KTP  "))
}

func TestClassifyInvalidHintIgnored(t *testing.T) {
	text := "KARTU KELUARGA"
	assert.Equal(t, KK, Classify(text, "PASSPORT"))
	assert.Equal(t, KK, Classify(text, "UNKNOWN"))
}

func TestClassifyHintOnEmptyText(t *testing.T) {
	assert.Equal(t, Ijazah, Classify("", "IJAZAH"))
	assert.Equal(t, Unknown, Classify("", ""))
}

func TestClassifyIsPure(t *testing.T) {
	text := "INVOICE\nNIK 1234"
	first := Classify(text, "")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text, ""))
	}
}

func TestAllContainsEveryLabel(t *testing.T) {
	all := All()
	assert.Len(t, all, 14)
	assert.Equal(t, Unknown, all[len(all)-1])
}
