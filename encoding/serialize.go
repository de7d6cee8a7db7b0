package encoding

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/go-textenc/textenc/dictionary"
	"github.com/go-textenc/textenc/encoding/api"
	"github.com/go-textenc/textenc/encoding/policies"
)

// PolicyConstructor creates an empty policy instance of one concrete kind,
// ready to receive serialized state.
type PolicyConstructor func() api.EncodingPolicy

// RegisterPolicy adds a policy constructor to the registry used to
// reconstruct serialized encoders. The registry key is the Kind of the
// constructed policy. Policy implementations outside this module call it from
// their init function.
func RegisterPolicy(constructor PolicyConstructor) {
	registerOfPolicies[constructor().Kind()] = constructor
}

var (
	registerOfPolicies = make(map[string]PolicyConstructor)
)

func init() {
	// Built-in policies, always included.
	RegisterPolicy(func() api.EncodingPolicy { return policies.NewDictionaryEncoding() })
	RegisterPolicy(func() api.EncodingPolicy { return policies.NewBagOfWords() })
	RegisterPolicy(func() api.EncodingPolicy { return policies.NewTfIdf() })
}

// serializedForm is the persisted state of a StringEncoding: the policy, with
// the kind needed to reconstruct its concrete type, and the dictionary.
type serializedForm struct {
	PolicyKind string                 `json:"policyKind"`
	Policy     json.RawMessage        `json:"policy"`
	Dictionary *dictionary.Dictionary `json:"dictionary"`
}

// MarshalJSON implements json.Marshaler.
func (e *StringEncoding) MarshalJSON() ([]byte, error) {
	policyState, err := json.Marshal(e.policy)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize %s policy state", e.policy.Kind())
	}
	return json.Marshal(&serializedForm{
		PolicyKind: e.policy.Kind(),
		Policy:     policyState,
		Dictionary: e.dict,
	})
}

// UnmarshalJSON implements json.Unmarshaler, reconstructing an encoder that
// continues encoding against the same label space. The serialized policy kind
// must have been registered (built-in policies always are; see
// RegisterPolicy).
func (e *StringEncoding) UnmarshalJSON(data []byte) error {
	form := serializedForm{Dictionary: dictionary.New()}
	if err := json.Unmarshal(data, &form); err != nil {
		return errors.Wrapf(err, "failed to parse serialized encoder")
	}
	constructor, found := registerOfPolicies[form.PolicyKind]
	if !found {
		return errors.Errorf("unknown encoding policy kind %q", form.PolicyKind)
	}
	policy := constructor()
	if len(form.Policy) > 0 {
		if err := json.Unmarshal(form.Policy, policy); err != nil {
			return errors.Wrapf(err, "failed to parse serialized %s policy state", form.PolicyKind)
		}
	}
	if form.Dictionary == nil {
		// A JSON null nils out the field instead of going through the
		// dictionary's UnmarshalJSON.
		form.Dictionary = dictionary.New()
	}
	e.policy = policy
	e.dict = form.Dictionary
	return nil
}

// Save writes the encoder state (policy and dictionary) to w as JSON.
func (e *StringEncoding) Save(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(e); err != nil {
		return errors.Wrapf(err, "failed to save encoder")
	}
	return nil
}

// Load reads an encoder previously written by Save.
func Load(r io.Reader) (*StringEncoding, error) {
	e := &StringEncoding{}
	if err := json.NewDecoder(r).Decode(e); err != nil {
		return nil, errors.Wrapf(err, "failed to load encoder")
	}
	return e, nil
}

// Clone returns a deep copy of the encoder: the copy's policy and dictionary
// evolve independently of the receiver's from here on. The policy is copied
// through its serialized form, so its kind must be registered.
func (e *StringEncoding) Clone() (*StringEncoding, error) {
	constructor, found := registerOfPolicies[e.policy.Kind()]
	if !found {
		return nil, errors.Errorf("cannot clone encoder with unregistered policy kind %q", e.policy.Kind())
	}
	policyState, err := json.Marshal(e.policy)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize %s policy state", e.policy.Kind())
	}
	policy := constructor()
	if err := json.Unmarshal(policyState, policy); err != nil {
		return nil, errors.Wrapf(err, "failed to copy %s policy state", e.policy.Kind())
	}
	return &StringEncoding{
		policy: policy,
		dict:   e.dict.Clone(),
	}, nil
}
