package tools

func stringCheck(fn func(field, v string) error) Check {
	return func(field string, v any) error {
		s, _ := v.(string)
		return fn(field, s)
	}
}

func objectCheck(fn func(field string, v map[string]any) error) Check {
	return func(field string, v any) error {
		m, _ := v.(map[string]any)
		return fn(field, m)
	}
}

func addressParam(name, desc string) Param {
	return Param{
		Name:        name,
		Description: desc,
		Type:        "string",
		Pattern:     AddressPattern,
		Required:    true,
		Check:       stringCheck(CheckAddress),
	}
}

func hashParam(name, desc string) Param {
	return Param{
		Name:        name,
		Description: desc,
		Type:        "string",
		Pattern:     HashPattern,
		Required:    true,
		Check:       stringCheck(CheckHash),
	}
}

func blockParam() Param {
	return Param{
		Name:        "block",
		Description: "Block number as hex quantity, or latest/earliest/pending",
		Type:        "string",
		Default:     "latest",
		Check:       stringCheck(CheckBlockParameter),
	}
}

func requiredBlockParam() Param {
	p := blockParam()
	p.Required = true
	p.Default = nil
	return p
}

func indexParam() Param {
	return Param{
		Name:        "index",
		Description: "Transaction position in the block as hex quantity (e.g. 0x0)",
		Type:        "string",
		Pattern:     QuantityPattern,
		Required:    true,
		Check:       stringCheck(CheckQuantity),
	}
}

func fullTxParam() Param {
	return Param{
		Name:        "fullTransactions",
		Description: "Return full transaction objects instead of hashes",
		Type:        "boolean",
		Default:     false,
	}
}

// Catalog lists every exposed tool. All methods are read-only; the only
// side effect of an invocation is the outbound RPC call itself.
func Catalog() []Spec {
	return []Spec{
		{
			Name:        "get_balance",
			Description: "Get the SHM balance of an address in wei and SHM.",
			Method:      "eth_getBalance",
			Params: []Param{
				addressParam("address", "Account address to query"),
				blockParam(),
			},
			Format: Balance(),
		},
		{
			Name:        "get_block_number",
			Description: "Get the number of the most recent block.",
			Method:      "eth_blockNumber",
			Format:      HexQuantity("Current block number"),
		},
		{
			Name:        "get_transaction_count",
			Description: "Get the number of transactions sent from an address (its nonce).",
			Method:      "eth_getTransactionCount",
			Params: []Param{
				addressParam("address", "Account address to query"),
				blockParam(),
			},
			Format: HexQuantity("Transaction count"),
		},
		{
			Name:        "get_block_transaction_count_by_hash",
			Description: "Get the number of transactions in a block, looked up by block hash.",
			Method:      "eth_getBlockTransactionCountByHash",
			Params: []Param{
				hashParam("blockHash", "Hash of the block"),
			},
			Format: HexQuantity("Block transaction count"),
		},
		{
			Name:        "get_block_transaction_count_by_number",
			Description: "Get the number of transactions in a block, looked up by block number.",
			Method:      "eth_getBlockTransactionCountByNumber",
			Params: []Param{
				requiredBlockParam(),
			},
			Format: HexQuantity("Block transaction count"),
		},
		{
			Name:        "estimate_gas",
			Description: "Estimate the gas needed to execute a hypothetical transaction.",
			Method:      "eth_estimateGas",
			Params: []Param{
				{
					Name:        "transaction",
					Description: "Transaction call object: from, to, gas, gasPrice, value, nonce, data",
					Type:        "object",
					Required:    true,
					Check:       objectCheck(CheckCallObject),
				},
			},
			Format: HexQuantity("Estimated gas"),
		},
		{
			Name:        "get_block_by_hash",
			Description: "Get a block by its hash.",
			Method:      "eth_getBlockByHash",
			Params: []Param{
				hashParam("blockHash", "Hash of the block"),
				fullTxParam(),
			},
			Format: PrettyJSON("Block"),
		},
		{
			Name:        "get_block_by_number",
			Description: "Get a block by its number or tag.",
			Method:      "eth_getBlockByNumber",
			Params: []Param{
				requiredBlockParam(),
				fullTxParam(),
			},
			Format: PrettyJSON("Block"),
		},
		{
			Name:        "get_block_receipts",
			Description: "Get all transaction receipts for a block. Not every node exposes this method.",
			Method:      "eth_getBlockReceipts",
			Params: []Param{
				requiredBlockParam(),
			},
			Format: PrettyJSON("Block receipts"),
		},
		{
			Name:        "get_transaction_by_hash",
			Description: "Get a transaction by its hash.",
			Method:      "eth_getTransactionByHash",
			Params: []Param{
				hashParam("txHash", "Hash of the transaction"),
			},
			Format: PrettyJSON("Transaction"),
		},
		{
			Name:        "get_transaction_by_block_hash_and_index",
			Description: "Get a transaction by block hash and position in the block.",
			Method:      "eth_getTransactionByBlockHashAndIndex",
			Params: []Param{
				hashParam("blockHash", "Hash of the block"),
				indexParam(),
			},
			Format: PrettyJSON("Transaction"),
		},
		{
			Name:        "get_transaction_by_block_number_and_index",
			Description: "Get a transaction by block number and position in the block.",
			Method:      "eth_getTransactionByBlockNumberAndIndex",
			Params: []Param{
				requiredBlockParam(),
				indexParam(),
			},
			Format: PrettyJSON("Transaction"),
		},
		{
			Name:        "get_transaction_receipt",
			Description: "Get the receipt of a mined transaction.",
			Method:      "eth_getTransactionReceipt",
			Params: []Param{
				hashParam("txHash", "Hash of the transaction"),
			},
			Format: PrettyJSON("Transaction receipt"),
		},
		{
			Name:        "get_chain_id",
			Description: "Get the chain ID of the connected network.",
			Method:      "eth_chainId",
			Format:      HexQuantity("Chain ID"),
		},
		{
			Name:        "get_node_list",
			Description: "Get a paginated list of active validator nodes (Shardeum extension).",
			Method:      "shardeum_getNodeList",
			Params: []Param{
				{Name: "page", Description: "Page number, starting at 1", Type: "integer", Default: 1},
				{Name: "limit", Description: "Nodes per page", Type: "integer", Default: 10},
			},
			Format: PrettyJSON("Node list"),
		},
		{
			Name:        "get_network_account",
			Description: "Get the global network account with current network parameters (Shardeum extension).",
			Method:      "shardeum_getNetworkAccount",
			Format:      PrettyJSON("Network account"),
		},
		{
			Name:        "get_cycle_info",
			Description: "Get cycle information, for the current cycle or a specific cycle number (Shardeum extension).",
			Method:      "shardeum_getCycleInfo",
			Params: []Param{
				{Name: "cycle", Description: "Cycle number; omit for the current cycle", Type: "integer"},
			},
			Format: PrettyJSON("Cycle info"),
		},
	}
}
