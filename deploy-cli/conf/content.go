package conf

const content = `# mrgnd deploy configuration
logLevel = "info"

# Registry file with the environments, the built-in registry is used when empty.
registry = ""

[chain]
id = "uni-6"
bech32Prefix = "juno"

[deployer]
sender = ""
admin = ""

# Stored code ids of the contracts.
[codeIds]
pricefeed = 0
insuranceFund = 0
engine = 0
vamm = 0

[server]
addr = ":8080"
`
