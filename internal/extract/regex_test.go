package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"17 Agustus 1995", "1995-08-17"},
		{"5 MEI 2001", "2001-05-05"},
		{"12 Pebruari 1988", "1988-02-12"},
		{"03-09-1999", "1999-09-03"},
		{"03/09/1999", "1999-09-03"},
		{"Bandung, 1 Januari 2000", "2000-01-01"},
		{"tanggal tidak ada", ""},
		{"99 Januari 2000", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDate(tt.in), "input %q", tt.in)
	}
}

func TestExtractKKFields(t *testing.T) {
	text := `KARTU KELUARGA
NOMOR KK: 1234567890123456
Nama Kepala Keluarga : BUDI SANTOSO
Alamat : JL. MERDEKA NO. 10
RT/RW : 003/005
Kelurahan : CIHAPIT
Kecamatan : BANDUNG WETAN
Kota : BANDUNG
Provinsi : JAWA BARAT
Kode Pos : 40114
Dikeluarkan Tanggal : 12 Maret 2019`

	data := ExtractKKFields(text)

	require.Equal(t, "1234567890123456", data["nomor_kk"])
	assert.Equal(t, "BUDI SANTOSO", data["kepala_keluarga"])
	assert.Equal(t, "JL. MERDEKA NO. 10", data["alamat"])
	assert.Equal(t, "003/005", data["rt_rw"])
	assert.Equal(t, "CIHAPIT", data["kelurahan_desa"])
	assert.Equal(t, "BANDUNG WETAN", data["kecamatan"])
	assert.Equal(t, "BANDUNG", data["kabupaten_kota"])
	assert.Equal(t, "JAWA BARAT", data["provinsi"])
	assert.Equal(t, "40114", data["kode_pos"])
	assert.Equal(t, "2019-03-12", data["tanggal_dikeluarkan"])
}

func TestExtractKKFieldsBareNumberUnderTitle(t *testing.T) {
	text := "KARTU KELUARGA\n1234567890123456\nBUDI"
	data := ExtractKKFields(text)
	assert.Equal(t, "1234567890123456", data["nomor_kk"])
}

func TestExtractKKFieldsMissingFieldsAbsent(t *testing.T) {
	data := ExtractKKFields("some unrelated text")
	assert.NotContains(t, data, "nomor_kk")
	assert.NotContains(t, data, "kepala_keluarga")
}

func TestExtractIjazahFields(t *testing.T) {
	text := `IJAZAH
SEKOLAH MENENGAH ATAS
Nama : SITI RAHAYU
Tempat dan Tanggal Lahir : BANDUNG, 12 Mei 2002
LULUS pada tahun 2020`

	data := ExtractIjazahFields(text)

	assert.Equal(t, "SITI RAHAYU", data["nama"])
	assert.Equal(t, "SEKOLAH MENENGAH ATAS", data["nama_sekolah"])
	assert.Equal(t, "BANDUNG", data["tempat_lahir"])
	assert.Equal(t, "2002-05-12", data["tanggal_lahir"])
	assert.Equal(t, "2020", data["tahun_lulus"])
	assert.Equal(t, "SMA", data["jenjang"])
}

func TestExtractIjazahGraduationYearFallback(t *testing.T) {
	// No LULUS context; the latest printed year is taken.
	text := "IJAZAH\ndiberikan di Bandung\n1998 2020"
	data := ExtractIjazahFields(text)
	assert.Equal(t, "2020", data["tahun_lulus"])
}
