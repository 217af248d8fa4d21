package render

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
)

// Branding carries the company artwork embedded into every document. Both
// fields are base64 payloads; either may be empty, in which case the
// templates fall back to a text placeholder and the default font.
type Branding struct {
	LogoBase64 string
	FontBase64 string
}

// LoadBranding reads the logo and headline font from disk. A missing or
// unreadable file is not an error — the documents simply render without it,
// same as a misconfigured path always has.
func LoadBranding(logoPath, fontPath string) Branding {
	var b Branding
	if logoPath != "" {
		if data, err := os.ReadFile(logoPath); err == nil {
			b.LogoBase64 = base64.StdEncoding.EncodeToString(data)
		}
	}
	if fontPath != "" {
		if data, err := os.ReadFile(fontPath); err == nil {
			b.FontBase64 = base64.StdEncoding.EncodeToString(data)
		}
	}
	return b
}

// LogoTag returns the logo image element. Built by hand because
// html/template refuses data: URLs in src attributes.
func (b Branding) LogoTag() template.HTML {
	if b.LogoBase64 == "" {
		return "LOGO"
	}
	tag := fmt.Sprintf(`<img src="data:image/png;base64,%s" alt="Company Logo" style="width: 100%%; height: 100%%; border-radius: 2px;">`, b.LogoBase64)
	return template.HTML(tag)
}

// FontFace returns the @font-face rule embedding the headline font, or an
// empty rule set when no font is configured.
func (b Branding) FontFace() template.CSS {
	if b.FontBase64 == "" {
		return ""
	}
	rule := fmt.Sprintf(`@font-face {
            font-family: 'Mozilla Headline';
            src: url(data:font/ttf;base64,%s) format('truetype');
        }`, b.FontBase64)
	return template.CSS(rule)
}

// signatureTag returns the client signature image element, or nothing when no
// signature was captured.
func signatureTag(b64 string) template.HTML {
	if b64 == "" {
		return ""
	}
	tag := fmt.Sprintf(`<img src="data:image/png;base64,%s" alt="Client Signature" style="max-height:100px; border:1px solid #ccc; padding:4px;"/>`, b64)
	return template.HTML(tag)
}
