package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	d := LoadDefaults()
	if d.FinancialSheetName != "Resultados" {
		t.Errorf("FinancialSheetName = %q", d.FinancialSheetName)
	}
	if d.FinancialParentName != "Datos que fluyen" {
		t.Errorf("FinancialParentName = %q", d.FinancialParentName)
	}
	if d.FinancialPad != 2 {
		t.Errorf("FinancialPad = %d", d.FinancialPad)
	}
	if d.PersonnelParentCode != "20" {
		t.Errorf("PersonnelParentCode = %q", d.PersonnelParentCode)
	}
	if d.PersonnelSheetName != "20 Personal" {
		t.Errorf("PersonnelSheetName = %q", d.PersonnelSheetName)
	}
}

func TestLoadDefaults_EnvOverrides(t *testing.T) {
	t.Setenv("FINANCIAL_PAD", "4")
	t.Setenv("PERSONNEL_PARENT_CODE", "30")

	d := LoadDefaults()
	if d.FinancialPad != 4 {
		t.Errorf("FinancialPad = %d, want 4", d.FinancialPad)
	}
	if d.PersonnelParentCode != "30" {
		t.Errorf("PersonnelParentCode = %q, want 30", d.PersonnelParentCode)
	}
}

func TestLoad_ServerSection(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MCP_BEARER_TOKEN", "secreto")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Server.BearerToken != "secreto" {
		t.Errorf("BearerToken = %q", cfg.Server.BearerToken)
	}
}

func TestGetEnvIntOrDefault_BadValue(t *testing.T) {
	t.Setenv("FINANCIAL_PAD", "no-es-numero")
	if d := LoadDefaults(); d.FinancialPad != 2 {
		t.Errorf("unparseable env value should fall back, got %d", d.FinancialPad)
	}
}
