package galascan

// CSS selector candidates for the GalaScan wallet page. The page structure
// is not reliably known in advance, so several alternatives are tried in
// sequence and failing ones simply contribute nothing.
const (
	BaseWalletURL = "https://galascan.gala.com/wallet/"

	// Landmark element whose presence signals that primary content rendered.
	SelectorContentLandmark = "main"
)

// BalanceSelectors target elements likely to carry token balances.
var BalanceSelectors = []string{
	"div[class*='balance']",
	"div[class*='token']",
	"div[class*='asset']",
	"span[class*='amount']",
}

// TransactionRowSelectors target likely transaction-row containers,
// broadest last. Rows matched by more than one selector are parsed more
// than once; duplicates are preserved.
var TransactionRowSelectors = []string{
	"tr[class*='transaction']",
	"div[class*='transaction-row']",
	"div[class*='tx-row']",
	"tbody tr",
	"div[role='row']",
}

const (
	maxRowsPerSelector = 20
	maxHashLinks       = 10

	// Substring a link's destination must contain to count as a
	// transaction link.
	transactionLinkMarker = "transaction"
	hashLinkTextMarker    = "0x"
)
