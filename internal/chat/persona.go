package chat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Intent selects which instruction block is appended to the system prompt.
const (
	IntentNews    = "news"
	IntentJobs    = "jobs"
	IntentConsult = "consult"
)

// ValidIntent reports whether s is a known conversation mode.
func ValidIntent(s string) bool {
	switch s {
	case IntentNews, IntentJobs, IntentConsult:
		return true
	}
	return false
}

// PersonaSpec holds the prompt template: persona/rules preamble, per-intent
// mode blocks, the closing instruction, the fixed model acknowledgement and
// the canned greeting for empty input.
type PersonaSpec struct {
	System    string            `yaml:"system"`
	NoProfile string            `yaml:"no_profile"`
	Modes     map[string]string `yaml:"modes"`
	Closing   string            `yaml:"closing"`
	Ack       string            `yaml:"ack"`
	Greeting  string            `yaml:"greeting"`
}

// DefaultPersona returns the built-in prompt template. The YAML file, when
// present, overrides individual fields.
func DefaultPersona() PersonaSpec {
	return PersonaSpec{
		System: "Kamu adalah asisten virtual untuk portal industri minyak dan gas (migas) Indonesia.\n" +
			"Selalu jawab dalam Bahasa Indonesia.\n" +
			"Fokus pada topik industri migas dan pengembangan karier di sektor energi.\n" +
			"Jangan mengarang angka spesifik (harga, gaji, statistik) yang tidak kamu ketahui pasti.\n" +
			"Hindari klaim medis, finansial, atau hukum yang spesifik.",
		NoProfile: "(tidak ada profil pengguna)",
		Modes: map[string]string{
			IntentNews: "Mode berita: jawab pertanyaan seputar berita industri migas. " +
				"Rangkum secara ringkas, jangan mengarang angka real-time, dan jika relevan " +
				"sarankan kata kunci pencarian yang bisa dipakai pengguna.",
			IntentJobs: "Mode lowongan: rekomendasikan peran yang cocok dengan profil pengguna " +
				"(keahlian, lokasi, pengalaman). Sertakan: target posisi, alasan, gap keahlian, " +
				"sertifikasi opsional, contoh kata kunci pencarian lowongan, dan rencana 30/60/90 hari. " +
				"Jika profil terlalu minim, ajukan maksimal dua pertanyaan klarifikasi alih-alih menebak.",
			IntentConsult: "Mode konsultasi: jawab dengan gaya mentor: framing masalah, opsi yang tersedia, " +
				"trade-off tiap opsi, lalu tutup dengan 3-5 langkah konkret yang bisa langsung dikerjakan.",
		},
		Closing: "Apa pun modenya: jawab ringkas, langsung bisa ditindaklanjuti.",
		Ack:     "Siap membantu.",
		Greeting: "Halo! Saya asisten portal migas. Saya bisa membantu membahas berita industri migas, " +
			"merekomendasikan lowongan yang cocok dengan profil Anda, atau menjadi teman konsultasi karier. " +
			"Silakan tulis pertanyaan Anda.",
	}
}

// LoadPersona reads the template file at path and merges it over the
// defaults. A missing file is not an error; the defaults are returned.
func LoadPersona(path string) (PersonaSpec, error) {
	spec := DefaultPersona()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return spec, nil
		}
		return spec, fmt.Errorf("read persona file: %w", err)
	}
	var loaded PersonaSpec
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return spec, fmt.Errorf("parse persona file: %w", err)
	}
	if loaded.System != "" {
		spec.System = loaded.System
	}
	if loaded.NoProfile != "" {
		spec.NoProfile = loaded.NoProfile
	}
	for k, v := range loaded.Modes {
		if v != "" {
			spec.Modes[k] = v
		}
	}
	if loaded.Closing != "" {
		spec.Closing = loaded.Closing
	}
	if loaded.Ack != "" {
		spec.Ack = loaded.Ack
	}
	if loaded.Greeting != "" {
		spec.Greeting = loaded.Greeting
	}
	return spec, nil
}
