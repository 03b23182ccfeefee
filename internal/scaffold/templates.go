package scaffold

// Source templates for the composable patterns. Delimiters are [[ ]]; the
// emitted text owns {{ }}.

const selectionSingleTmpl = `import { createSingle } from '@vuetify/v0/composables'
import { ref, computed } from 'vue'

export interface [[.Base]]Item {
  id: string
  value: any
  disabled?: boolean
}

export function [[.Name]]<T = any>() {
  const single = createSingle({ mandatory: 'force' })

  const register = (item: [[.Base]]Item) => {
    single.register(item)
  }

  const select = (id: string) => {
    single.select(id)
  }

  const selectedItem = computed(() => {
    const selectedId = Array.from(single.selected.value)[0]
    return single.items.value.get(selectedId)
  })

  return {
    // State
    selected: single.selected,
    selectedValue: single.selectedValue,
    selectedItem,

    // Actions
    register,
    select,
    isSelected: single.isSelected,

    // Utils
    clear: single.clear,
    items: single.items
  }
}

// Usage example:
// const selection = [[.Name]]()
// selection.register({ id: 'option1', value: 'Option 1' })
// selection.select('option1')
`

const selectionMultiTmpl = `import { createSelection } from '@vuetify/v0/composables'
import { computed } from 'vue'

export interface [[.Base]]Item {
  id: string
  value: any
  disabled?: boolean
}

export function [[.Name]]<T = any>() {
  const selection = createSelection({ multiple: true })

  const register = (item: [[.Base]]Item) => {
    selection.register(item)
  }

  const toggle = (id: string) => {
    selection.toggle(id)
  }

  const selectedItems = computed(() => {
    return Array.from(selection.selected.value)
      .map(id => selection.items.value.get(id))
      .filter(Boolean)
  })

  const selectedCount = computed(() => selection.selected.value.size)

  return {
    // State
    selected: selection.selected,
    selectedItems,
    selectedCount,

    // Actions
    register,
    toggle,
    select: selection.select,
    deselect: selection.deselect,
    isSelected: selection.isSelected,

    // Utils
    clear: selection.clear,
    items: selection.items
  }
}

// Usage example:
// const selection = [[.Name]]()
// selection.register({ id: 'item1', value: 'Item 1' })
// selection.toggle('item1')
`

const selectionGroupTmpl = `import { createGroup } from '@vuetify/v0/composables'
import { computed } from 'vue'

export interface [[.Base]]Item {
  id: string
  value: any
  disabled?: boolean
}

export function [[.Name]]<T = any>() {
  const group = createGroup()

  const register = (item: [[.Base]]Item) => {
    group.register(item)
  }

  const selectedItems = computed(() => {
    return Array.from(group.selected.value)
      .map(id => group.items.value.get(id))
      .filter(Boolean)
  })

  return {
    // State
    selected: group.selected,
    selectedItems,
    isEmpty: group.isEmpty,
    isAll: group.isAll,
    isMixed: group.isMixed,

    // Actions
    register,
    toggle: group.toggle,
    select: group.select,
    deselect: group.deselect,
    selectAll: group.selectAll,
    deselectAll: group.deselectAll,
    toggleAll: group.toggleAll,
    isSelected: group.isSelected,

    // Utils
    clear: group.clear,
    items: group.items
  }
}

// Usage example:
// const group = [[.Name]]()
// group.register({ id: 'item1', value: 'Item 1' })
// group.selectAll() // Select all registered items
`

const formTmpl = `import { createForm } from '@vuetify/v0/composables'
import { computed } from 'vue'

export interface [[.Base]]Field {
  id: string
  value: any
  rules?: Array<(value: any) => boolean | string | Promise<boolean | string>>
  disabled?: boolean
}

export function [[.Name]]() {
  const form = createForm()

  const registerField = (field: [[.Base]]Field) => {
    form.register(field)
  }

  const getFieldError = (id: string) => {
    const field = form.fields.value.get(id)
    return field?.errorMessage || null
  }

  const isFieldValid = (id: string) => {
    const field = form.fields.value.get(id)
    return field?.isValid ?? true
  }

  const updateField = (id: string, value: any) => {
    const field = form.fields.value.get(id)
    if (field) {
      field.value = value
    }
  }

  const validateField = async (id: string) => {
    const field = form.fields.value.get(id)
    if (field) {
      await field.validate()
    }
  }

  return {
    // State
    isValid: form.isValid,
    errors: form.errors,
    fields: form.fields,

    // Actions
    registerField,
    updateField,
    validateField,
    validate: form.validate,
    reset: form.reset,
    submit: form.submit,

    // Utils
    getFieldError,
    isFieldValid
  }
}

// Usage example:
// const form = [[.Name]]()
// form.registerField({
//   id: 'email',
//   value: '',
//   rules: [
//     v => !!v || 'Email required',
//     v => /.+@.+/.test(v) || 'Invalid email'
//   ]
// })
`

const contextTmpl = `import { createContext } from '@vuetify/v0/composables'
import { reactive, toRefs } from 'vue'

export interface [[.Base]]State {
  // Define your context state here
  theme: 'light' | 'dark'
  user: { id: string, name: string } | null
  settings: Record<string, any>
}

export interface [[.Base]]Actions {
  // Define your context actions here
  setTheme: (theme: 'light' | 'dark') => void
  login: (user: { id: string, name: string }) => void
  logout: () => void
  updateSettings: (settings: Record<string, any>) => void
}

export type [[.Base]]Context = [[.Base]]State & [[.Base]]Actions

// Create the context hooks
export const [use[[.Base]], provide[[.Base]]] =
  createContext<[[.Base]]Context>('[[.Base]]')

// Example provider setup function
export function create[[.Base]]Provider(): [[.Base]]Context {
  const state = reactive<[[.Base]]State>({
    theme: 'light',
    user: null,
    settings: {}
  })

  const setTheme = (theme: 'light' | 'dark') => {
    state.theme = theme
  }

  const login = (user: { id: string, name: string }) => {
    state.user = user
  }

  const logout = () => {
    state.user = null
  }

  const updateSettings = (settings: Record<string, any>) => {
    state.settings = { ...state.settings, ...settings }
  }

  return {
    ...toRefs(state),
    setTheme,
    login,
    logout,
    updateSettings
  }
}

// Usage example:
// // In parent component:
// const context = create[[.Base]]Provider()
// provide[[.Base]](context)
//
// // In child component:
// const { theme, setTheme } = use[[.Base]]()
`

const registryTmpl = `import { createRegistry } from '@vuetify/v0/composables'
import { computed } from 'vue'

export interface [[.Base]]Item {
  id: string
  value: any
  metadata?: Record<string, any>
}

export function [[.Name]]<T = any>() {
  const registry = createRegistry<T>()

  const register = (item: [[.Base]]Item) => {
    registry.register(item)
  }

  const itemsArray = computed(() => {
    return Array.from(registry.items.value.values())
  })

  const getItem = (id: string) => {
    return registry.items.value.get(id)
  }

  const hasItem = (id: string) => {
    return registry.items.value.has(id)
  }

  return {
    // State
    items: registry.items,
    itemsArray,

    // Actions
    register,
    unregister: registry.unregister,

    // Utils
    getItem,
    hasItem,
    clear: registry.clear
  }
}

// Usage example:
// const registry = [[.Name]]()
// registry.register({ id: 'item1', value: { name: 'Item 1' } })
`

const componentTmpl = `<template>
  <div class="v-[[.Lower]]" :class="componentClasses">
    <slot
      :selected="selected"
      :toggle="toggle"
      :isSelected="isSelected"
    />
  </div>
</template>

<script setup lang="ts">
import { createSelection } from '@vuetify/v0/composables'
import { computed, watch, watchEffect } from 'vue'

export interface [[.Name]]Props {
  modelValue?: string[]
  multiple?: boolean
  disabled?: boolean
  color?: string
}

const props = withDefaults(defineProps<[[.Name]]Props>(), {
  multiple: false,
  disabled: false,
  color: 'primary'
})

const emit = defineEmits<{
  'update:modelValue': [value: string[]]
  change: [selected: string[]]
}>()

const selection = createSelection({
  multiple: props.multiple
})

// Sync with v-model
watchEffect(() => {
  if (props.modelValue) {
    selection.clear()
    props.modelValue.forEach(id => selection.select(id))
  }
})

watch(() => selection.selected.value, (selected) => {
  const value = Array.from(selected)
  emit('update:modelValue', value)
  emit('change', value)
})

const componentClasses = computed(() => ({
  [` + "`v-[[.Lower]]--multiple`" + `]: props.multiple,
  [` + "`v-[[.Lower]]--disabled`" + `]: props.disabled,
  [` + "`v-[[.Lower]]--${props.color}`" + `]: true
}))

// Expose for programmatic access
defineExpose({
  selected: selection.selected,
  toggle: selection.toggle,
  select: selection.select,
  deselect: selection.deselect,
  clear: selection.clear
})
</script>

<style scoped>
.v-[[.Lower]] {
  /* Component styles */
}
</style>

<!-- Usage example:
<[[.Name]] v-model="selected" multiple>
  <template #default="{ selected, toggle, isSelected }">
    <div v-for="item in items" :key="item.id">
      <button
        @click="toggle(item.id)"
        :class="{ active: isSelected(item.id) }"
      >
        {{ item.name }}
      </button>
    </div>
  </template>
</[[.Name]]>
-->
`
