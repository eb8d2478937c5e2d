package validation

import (
	"regexp"
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var blockchainTxStatuses = []string{
	string(models.BlockchainTxStatusPending),
	string(models.BlockchainTxStatusConfirmed),
	string(models.BlockchainTxStatusFailed),
}

// Entity types that can be anchored on-chain.
var anchorableEntityTypes = []string{
	EntityCertification,
	EntityShipment,
	EntityQualityReport,
	EntityOrder,
}

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

var blockchainTxRequiredFields = []string{"entity_type", "entity_id", "tx_hash", "chain_id"}

// BlockchainTxValidator checks BlockchainTxRef payloads.
type BlockchainTxValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewBlockchainTxValidator(limits Limits) *BlockchainTxValidator {
	return &BlockchainTxValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.BlockchainTxStatusPending):   {string(models.BlockchainTxStatusConfirmed), string(models.BlockchainTxStatusFailed)},
			string(models.BlockchainTxStatusConfirmed): {},
			string(models.BlockchainTxStatusFailed):    {string(models.BlockchainTxStatusPending)},
		}),
	}
}

func (v *BlockchainTxValidator) EntityType() string { return EntityBlockchainTx }

func (v *BlockchainTxValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, blockchainTxRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *BlockchainTxValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *BlockchainTxValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *BlockchainTxValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkEnumField(&res, payload, "entity_type", anchorableEntityTypes)
	checkUUIDField(&res, payload, "entity_id")

	if hash, ok := checkStringField(&res, payload, "tx_hash", 2, 128); ok {
		if !txHashPattern.MatchString(hash) {
			res.add("tx_hash", "tx_hash must be a 0x-prefixed 64-digit hex string", CodeInvalidFormat)
		}
	}

	checkStringField(&res, payload, "chain_id", 1, 50)

	if block, ok := checkNumberField(&res, payload, "block_number"); ok && block < 0 {
		res.add("block_number", "block_number cannot be negative", CodeInvalidNumber)
	}

	checkEnumField(&res, payload, "status", blockchainTxStatuses)

	if confirmed, ok := checkDateField(&res, payload, "confirmed_at"); ok {
		res.addError(checkPastDate("confirmed_at", confirmed, time.Now()))
	}

	return res
}
