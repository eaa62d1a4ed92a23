package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>Whole Foods Market
</STMTTRN>
<STMTTRN>
<TRNTYPE>CHECK
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-500.00
<FITID>2024012501
<CHECKNUM>1234
<NAME>CHECK #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240130120000[0:GMT]
<TRNAMT>2500.00
<FITID>2024013001
<NAME>ACH CREDIT ACME PAYROLL
</STMTTRN>
<STMTTRN>
<TRNTYPE>FEE
<DTPOSTED>20240131120000[0:GMT]
<TRNAMT>-4.00
<FITID>2024013101
<NAME>MONTHLY SERVICE FEE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2024011501
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "valid bank statement",
			ofxData:       sampleBankOFX,
			expectedCount: 5,
			expectedError: false,
		},
		{
			name:          "valid credit card statement",
			ofxData:       sampleCreditCardOFX,
			expectedCount: 2,
			expectedError: false,
		},
		{
			name:          "invalid OFX data",
			ofxData:       "not valid OFX",
			expectedError: true,
		},
		{
			name:          "empty OFX",
			ofxData:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser()
			reader := strings.NewReader(tt.ofxData)

			entries, err := parser.ParseFile(context.Background(), reader)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, entries, tt.expectedCount)
			}
		})
	}
}

func TestParseBankEntries(t *testing.T) {
	parser := NewParser()

	entries, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	posted := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC).In(time.Local)

	starbucks := entries[0]
	assert.Empty(t, starbucks.ID)
	assert.Equal(t, "STARBUCKS STORE #1234", starbucks.Name)
	assert.Equal(t, 25.50, starbucks.Amount)
	assert.Equal(t, model.EntryTypeExpense, starbucks.Type)
	assert.Equal(t, CategoryOther, starbucks.Category)
	assert.Equal(t, posted.Format("2006-01-02"), starbucks.Date.Format("2006-01-02"))
	assert.Equal(t, posted.Format("15:04"), starbucks.Time.Format("15:04"))

	assert.Equal(t, "Whole Foods Market", entries[1].Name)
	assert.Equal(t, 125.00, entries[1].Amount)

	assert.Equal(t, "CHECK #1234", entries[2].Name)
	assert.Equal(t, 500.00, entries[2].Amount)

	payroll := entries[3]
	assert.Equal(t, "ACME PAYROLL", payroll.Name)
	assert.Equal(t, 2500.00, payroll.Amount)
	assert.Equal(t, model.EntryTypeIncome, payroll.Type)
	assert.Equal(t, CategorySalary, payroll.Category)

	fee := entries[4]
	assert.Equal(t, model.EntryTypeExpense, fee.Type)
	assert.Equal(t, CategoryBills, fee.Category)
}

func TestParseCreditCardEntries(t *testing.T) {
	parser := NewParser()

	entries, err := parser.ParseFile(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "AMAZON.COM*RT4Y7HG2", entries[0].Name)
	assert.Equal(t, 45.99, entries[0].Amount)
	assert.Equal(t, model.EntryTypeExpense, entries[0].Type)

	assert.Equal(t, "NETFLIX.COM", entries[1].Name)
	assert.Equal(t, 15.00, entries[1].Amount)
}

func TestImportedCategoriesAreDefaults(t *testing.T) {
	defaults := make(map[string]bool)
	for _, c := range model.DefaultCategories() {
		defaults[string(c.Type)+"/"+c.Name] = true
	}

	parser := NewParser()
	for _, data := range []string{sampleBankOFX, sampleCreditCardOFX} {
		entries, err := parser.ParseFile(context.Background(), strings.NewReader(data))
		require.NoError(t, err)
		for _, e := range entries {
			assert.True(t, defaults[string(e.Type)+"/"+e.Category], "%s/%s is not a default category", e.Type, e.Category)
		}
	}
}

func TestExtractMerchantName(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		memo     string
		payee    string
		expected string
	}{
		{
			name:     "remove POS prefix",
			input:    "POS PURCHASE STARBUCKS",
			expected: "STARBUCKS",
		},
		{
			name:     "remove DEBIT CARD prefix",
			input:    "DEBIT CARD PURCHASE WHOLE FOODS",
			expected: "WHOLE FOODS",
		},
		{
			name:     "keep clean name",
			input:    "NETFLIX.COM",
			expected: "NETFLIX.COM",
		},
		{
			name:     "trim whitespace",
			input:    "  AMAZON.COM  ",
			expected: "AMAZON.COM",
		},
		{
			name:     "strip leading date",
			input:    "03/14 CORNER BAKERY",
			expected: "CORNER BAKERY",
		},
		{
			name:     "generic name falls back to memo",
			input:    "PAYMENT",
			memo:     "CITY WATER",
			expected: "CITY WATER",
		},
		{
			name:     "payee wins",
			input:    "SQ *BLUE BOTTLE",
			payee:    "Blue Bottle Coffee",
			expected: "Blue Bottle Coffee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ofxgo.Transaction{
				Name: ofxgo.String(tt.input),
				Memo: ofxgo.String(tt.memo),
			}
			if tt.payee != "" {
				tx.Payee = &ofxgo.Payee{Name: ofxgo.String(tt.payee)}
			}
			assert.Equal(t, tt.expected, parser.extractMerchantName(tx))
		})
	}
}

func TestFilterNew(t *testing.T) {
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	clock := time.Date(0, time.January, 1, 12, 0, 0, 0, time.Local)
	coffee := model.Entry{Name: "STARBUCKS", Amount: 25.50, Type: model.EntryTypeExpense, Date: day, Time: clock}

	existing := []model.Entry{coffee}

	dearer := coffee
	dearer.Amount = 30

	nextDay := coffee
	nextDay.Date = day.AddDate(0, 0, 1)

	refund := coffee
	refund.Type = model.EntryTypeIncome

	stored := coffee
	stored.ID = "already-saved"
	stored.Category = "Food"

	incoming := []model.Entry{stored, dearer, nextDay, dearer, refund}

	fresh := FilterNew(existing, incoming)
	assert.Equal(t, []model.Entry{dearer, nextDay, refund}, fresh)

	assert.Equal(t, Fingerprint(coffee), Fingerprint(stored))
	assert.Empty(t, FilterNew(incoming, incoming))
}

func TestGetAccounts(t *testing.T) {
	parser := NewParser()

	accounts, err := parser.GetAccounts(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890"}, accounts)

	accounts, err = parser.GetAccounts(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	assert.Equal(t, []string{"4111111111111111"}, accounts)

	_, err = parser.GetAccounts(context.Background(), strings.NewReader("garbage"))
	assert.Error(t, err)
}
