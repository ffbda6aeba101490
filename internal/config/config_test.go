package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/truenorth-fi/mortgage-affordability/pkg/mortgage"
)

const testConfigYAML = `---
logging:
  level: debug
  format: console
output:
  format: csv
scenarios:
  - name: downtown condo
    active: true
    mortgage:
      purchasePrice: 650000
      downPayment: 65000
      downPaymentMode: amount
      jurisdiction:
        province: ON
        municipality: toronto
      interestRate: 5.25
      amortizationYears: 25
      termYears: 5
      paymentFrequency: accelerated-biweekly
      buyer:
        firstTimeBuyer: true
      prepayment:
        extraPerPayment: 100
  - name: inactive scenario
    active: false
    mortgage:
      purchasePrice: 400000
      downPayment: 20
      downPaymentMode: percent
      jurisdiction:
        province: BC
      interestRate: 4.5
      amortizationYears: 30
      termYears: 5
      paymentFrequency: monthly
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeTestConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %s, expected csv", conf.Output.Format)
	}
	if len(conf.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(conf.Scenarios))
	}

	first := conf.Scenarios[0]
	if first.Name != "downtown condo" || !first.Active {
		t.Errorf("unexpected first scenario: %+v", first)
	}
	if first.Mortgage.PurchasePrice != 650000 {
		t.Errorf("PurchasePrice = %.2f, expected 650000", first.Mortgage.PurchasePrice)
	}
	if first.Mortgage.Jurisdiction.Municipality != "toronto" {
		t.Errorf("Municipality = %s, expected toronto", first.Mortgage.Jurisdiction.Municipality)
	}
	if first.Mortgage.PaymentFrequency != mortgage.FrequencyAcceleratedBiWeekly {
		t.Errorf("PaymentFrequency = %s, expected accelerated-biweekly", first.Mortgage.PaymentFrequency)
	}
	if first.Mortgage.Prepayment.ExtraPerPayment != 100 {
		t.Errorf("ExtraPerPayment = %.2f, expected 100", first.Mortgage.Prepayment.ExtraPerPayment)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(testConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if len(conf.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(conf.Scenarios))
	}
	if conf.Scenarios[1].Mortgage.DownPaymentMode != mortgage.DownPaymentPercent {
		t.Errorf("DownPaymentMode = %s, expected percent", conf.Scenarios[1].Mortgage.DownPaymentMode)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestActiveScenarios(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(testConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	active := conf.ActiveScenarios()
	if len(active) != 1 {
		t.Fatalf("expected 1 active scenario, got %d", len(active))
	}
	if active[0].Name != "downtown condo" {
		t.Errorf("active scenario = %s, expected downtown condo", active[0].Name)
	}
}
